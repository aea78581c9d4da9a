package cli_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/abdidvp/easydelivery/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/require"
)

const pickingYAML = `
id: 42
name: WH/OUT/00042
carrier:
  name: Easy Express
  delivery_type: %s
partner:
  name: Jane Doe
  street: 12 Rue des Fleurs
  city: Paris
  zip: "75001"
  country_code: FR
moves:
  - product_name: Mug
    weight: 0.4
    list_price: 12.5
    quantity: 2
    description: Blue mug
`

// clearEnv unsets the overrides so a developer's shell cannot leak into tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"EASY_DELIVERY_API_URL", "EASY_DELIVERY_AUTH_TOKEN", "EASY_DELIVERY_DSN"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writePicking(t *testing.T, dir, deliveryType string) string {
	t.Helper()
	path := filepath.Join(dir, "picking.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf(pickingYAML, deliveryType)), 0644))
	return path
}

func writeConfig(t *testing.T, dir, apiURL string) string {
	t.Helper()
	content := fmt.Sprintf(`parameters:
  easy_delivery.api_url: %s
  easy_delivery.auth_token: secret
company:
  name: Acme
  city: Lyon
storage:
  dir: %s
log_level: disabled
`, apiURL, filepath.Join(dir, "attachments"))
	path := filepath.Join(dir, "easydelivery.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
