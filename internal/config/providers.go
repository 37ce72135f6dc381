package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zhubert/dock/internal/errors"
	"github.com/zhubert/dock/internal/provider"
)

const providersFileName = "providers.yaml"

// providersFile is the on-disk shape of providers.yaml.
type providersFile struct {
	Providers []provider.Config `yaml:"providers"`
}

// ProvidersTemplate is the providers.yaml written by WriteProvidersTemplate.
const ProvidersTemplate = `# dock agent providers
#
# Each provider is an agent that can run in the side panel. The label shown
# in the chooser is display_name, then buffer_name, then "Unknown Agent".

providers:
  - name: claude
    display_name: Claude
    command: claude
    # args: ["--model", "opus"]
    # env:
    #   ANTHROPIC_LOG: debug

  - name: codex
    display_name: Codex
    command: codex

  - name: gemini
    display_name: Gemini
    command: gemini
`

// DefaultProviders are used when providers.yaml does not exist.
func DefaultProviders() []provider.Config {
	return []provider.Config{
		{Name: "claude", DisplayName: "Claude", Command: "claude"},
		{Name: "codex", DisplayName: "Codex", Command: "codex"},
		{Name: "gemini", DisplayName: "Gemini", Command: "gemini"},
	}
}

// LoadProviders reads providers.yaml from dir.
// Returns nil, nil if the file does not exist.
func LoadProviders(dir string) ([]provider.Config, error) {
	fp := filepath.Join(dir, providersFileName)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.ConfigLoadFailed(fp, err)
	}

	var f providersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.ConfigLoadFailed(fp, fmt.Errorf("failed to parse providers: %w", err))
	}
	if f.Providers == nil {
		f.Providers = []provider.Config{}
	}
	return f.Providers, nil
}

// WriteProvidersTemplate writes the default providers.yaml to dir.
// Returns an error if the file already exists.
func WriteProvidersTemplate(dir string) (string, error) {
	fp := filepath.Join(dir, providersFileName)

	if _, err := os.Stat(fp); err == nil {
		return "", errors.ConfigInvalid(fmt.Sprintf("%s already exists", fp))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.ConfigSaveFailed(fp, err)
	}
	if err := os.WriteFile(fp, []byte(ProvidersTemplate), 0644); err != nil {
		return "", errors.ConfigSaveFailed(fp, err)
	}
	return fp, nil
}

// MarshalProviders renders providers as providers.yaml content.
func MarshalProviders(providers []provider.Config) ([]byte, error) {
	return yaml.Marshal(providersFile{Providers: providers})
}
