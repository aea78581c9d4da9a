package e2e_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abdidvp/easydelivery/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "easydelivery-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "easydelivery")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/easydelivery")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixturePath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata/pickings", name))
	return abs
}

func run(t *testing.T, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Env = cleanEnv()
	var out, errOut strings.Builder
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	err := cmd.Run()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return out.String(), errOut.String(), exitCode
}

func cleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "EASY_DELIVERY_") {
			continue
		}
		env = append(env, kv)
	}
	return env
}

func writeConfig(t *testing.T, apiURL string) (configPath, storeDir string) {
	t.Helper()
	dir := t.TempDir()
	storeDir = filepath.Join(dir, "attachments")
	configPath = filepath.Join(dir, "easydelivery.yaml")
	content := fmt.Sprintf(`parameters:
  easy_delivery.api_url: %s
  easy_delivery.auth_token: e2e-token
company:
  name: Acme Warehouse
  city: Lyon
  country_code: FR
storage:
  driver: file
  dir: %s
`, apiURL, storeDir)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	return configPath, storeDir
}

// --- Label Tests ---

func TestE2E_LabelZPL(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		_, _ = w.Write([]byte(`{"status":"success","data":{"labels":[{"zpl":"^XA^XZ","shipper_ref":"A1"},{"zpl":"^XA^XZ","number":"B2"}]}}`))
	}))
	defer srv.Close()

	cfg, storeDir := writeConfig(t, srv.URL)
	out, stderr, code := run(t, "label", fixturePath("out-easy.yaml"), "--config", cfg, "--json")
	require.Equal(t, 0, code, stderr)

	var res domain.LabelResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Attachments, 2)
	assert.Equal(t, "A1.zpl", res.Attachments[0].Name)
	assert.Equal(t, "B2.zpl", res.Attachments[1].Name)

	// The move in a package is not sent.
	assert.Len(t, received["parcels"], 2)
	assert.Equal(t, "zpl", received["printtype"])

	_, err := os.Stat(filepath.Join(storeDir, "stock.picking", "101", "index.json"))
	assert.NoError(t, err)
}

func TestE2E_LabelAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error"}`))
	}))
	defer srv.Close()

	cfg, _ := writeConfig(t, srv.URL)
	_, stderr, code := run(t, "label", fixturePath("out-easy.yaml"), "--config", cfg)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Unknown Error: No message provided")
}

func TestE2E_LabelRefusesFixedCarrier(t *testing.T) {
	cfg, _ := writeConfig(t, "http://127.0.0.1:1")
	_, stderr, code := run(t, "label", fixturePath("out-fixed.json"), "--config", cfg)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "--force")
}

// --- Payload Tests ---

func TestE2E_Payload(t *testing.T) {
	cfg, _ := writeConfig(t, "http://127.0.0.1:1")
	out, stderr, code := run(t, "payload", fixturePath("out-fixed.json"), "--config", cfg)
	require.Equal(t, 0, code, stderr)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	recipient := payload["recipient"].(map[string]any)
	assert.Nil(t, recipient["postal_code"])
	assert.Equal(t, "BE", recipient["country"])
}

// --- Misc ---

func TestE2E_Version(t *testing.T) {
	out, _, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "easydelivery")
}

func TestE2E_Carriers(t *testing.T) {
	out, _, code := run(t, "carriers")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "easy_delivery")
}
