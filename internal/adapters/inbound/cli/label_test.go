package cli_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abdidvp/easydelivery/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labelServer(t *testing.T, body string, calls *int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		assert.Equal(t, "/api/order", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLabelCommand_ZPLAsJSON(t *testing.T) {
	clearEnv(t)
	var calls int
	srv := labelServer(t, `{"status":"success","data":{"labels":[
		{"zpl":"^XA^XZ","shipper_ref":"SR-1"},
		{"zpl":"^XA^FO^XZ","number":1002}
	]}}`, &calls)

	dir := t.TempDir()
	cfg := writeConfig(t, dir, srv.URL)
	pick := writePicking(t, dir, "easy_delivery")

	out, err := run(t, "label", pick, "--config", cfg, "--json")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	var res domain.LabelResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, int64(42), res.PickingID)
	assert.Equal(t, domain.LabelKindZPL, res.Kind)
	require.Len(t, res.Attachments, 2)
	assert.Equal(t, "SR-1.zpl", res.Attachments[0].Name)
	assert.Equal(t, "1002.zpl", res.Attachments[1].Name)
	assert.Equal(t, domain.MimeTypeText, res.Attachments[1].MimeType)

	out, err = run(t, "attachments", "42", "--config", cfg, "--json")
	require.NoError(t, err)
	var listed []domain.Attachment
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	assert.Len(t, listed, 2)
}

func TestLabelCommand_PDFRendered(t *testing.T) {
	clearEnv(t)
	var calls int
	srv := labelServer(t, `{"status":"success","data":{"pdf":"JVBERi0xLjQ=","parcel_ref":"PR-9"}}`, &calls)

	dir := t.TempDir()
	out, err := run(t, "label", writePicking(t, dir, "easy_delivery"), "--config", writeConfig(t, dir, srv.URL))
	require.NoError(t, err)
	assert.Contains(t, out, "PR-9.pdf")
	assert.Contains(t, out, "WH/OUT/00042")
}

func TestLabelCommand_APIErrorIsReturned(t *testing.T) {
	clearEnv(t)
	var calls int
	srv := labelServer(t, `{"status":"error","error":{"type":"ValidationError","message":"bad zip"}}`, &calls)

	dir := t.TempDir()
	_, err := run(t, "label", writePicking(t, dir, "easy_delivery"), "--config", writeConfig(t, dir, srv.URL))
	require.Error(t, err)

	var lge *domain.LabelGenerationError
	require.True(t, errors.As(err, &lge))
	assert.Equal(t, "ValidationError: bad zip", lge.Error())
}

func TestLabelCommand_RefusesOtherCarrier(t *testing.T) {
	clearEnv(t)
	var calls int
	srv := labelServer(t, `{"status":"success","data":{"pdf":"JVBERi0xLjQ=","parcel_ref":"PR-9"}}`, &calls)

	dir := t.TempDir()
	cfg := writeConfig(t, dir, srv.URL)
	pick := writePicking(t, dir, "fixed")

	_, err := run(t, "label", pick, "--config", cfg)
	assert.ErrorContains(t, err, "--force")
	assert.Equal(t, 0, calls)

	_, err = run(t, "label", pick, "--config", cfg, "--force")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestLabelCommand_MissingCredentials(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cfg := writeConfig(t, dir, `""`)

	_, err := run(t, "label", writePicking(t, dir, "easy_delivery"), "--config", cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfiguration))
}

func TestLabelCommand_RequiresPickingFile(t *testing.T) {
	_, err := run(t, "label")
	assert.Error(t, err)
}
