package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipping-quote/core/engine"
	"shipping-quote/core/output"
	"shipping-quote/core/tariff"
)

type quoteBody struct {
	QuoteID           string   `json:"quote_id"`
	InputHash         string   `json:"input_hash"`
	TariffFingerprint string   `json:"tariff_fingerprint"`
	Warnings          []string `json:"warnings"`
	Summary           struct {
		Volume decimal.Decimal `json:"volume"`
	} `json:"summary"`
	Quotes []struct {
		Mode  string `json:"mode"`
		Items []struct {
			Seq    string          `json:"seq"`
			Amount decimal.Decimal `json:"amount"`
		} `json:"items"`
		Totals []struct {
			Option string          `json:"option"`
			Amount decimal.Decimal `json:"amount"`
		} `json:"totals"`
	} `json:"quotes"`
}

func newTestServer(opts ...Option) *Server {
	return NewServer("test", engine.New(tariff.Default()), opts...)
}

func do(t *testing.T, s http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeQuote(t *testing.T, rec *httptest.ResponseRecorder) quoteBody {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body quoteBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestQuoteMAFIAndBBK(t *testing.T) {
	s := newTestServer()
	rec := do(t, s, http.MethodPost, "/quote", `{
		"length": 12.5, "width": 4.0, "height": 4.5, "weight": 30,
		"trailers": 1, "mafis": 1,
		"modes": ["MAFI MODE", "BBK"],
		"trailer_type": "Mechanical Trailer (<50 MT & <12 m)",
		"include_custom_clearance": true,
		"security_persons": 1, "security_shifts": 1
	}`)

	body := decodeQuote(t, rec)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, body.QuoteID)
	assert.Len(t, body.InputHash, 64)
	assert.Equal(t, tariff.Default().Fingerprint(), body.TariffFingerprint)
	assert.Empty(t, body.Warnings)
	assert.True(t, body.Summary.Volume.Equal(decimal.NewFromInt(225)))

	require.Len(t, body.Quotes, 2)
	assert.Equal(t, "MAFI", body.Quotes[0].Mode)
	assert.True(t, body.Quotes[0].Totals[0].Amount.Equal(decimal.NewFromInt(94900)))
	assert.True(t, body.Quotes[0].Totals[1].Amount.Equal(decimal.NewFromInt(121900)))
	assert.Equal(t, "BBK", body.Quotes[1].Mode)
	assert.True(t, body.Quotes[1].Totals[0].Amount.Equal(decimal.NewFromInt(65825)))
}

func TestQuoteUsesFormDefaults(t *testing.T) {
	s := newTestServer()
	body := decodeQuote(t, do(t, s, http.MethodPost, "/quote", `{}`))

	require.Len(t, body.Quotes, 1)
	assert.Equal(t, "MAFI", body.Quotes[0].Mode)
	assert.True(t, body.Quotes[0].Totals[0].Amount.Equal(decimal.NewFromInt(94900)))
}

func TestQuoteSameInputSameHash(t *testing.T) {
	s := newTestServer()
	payload := `{"weight": "42.5", "modes": ["BBK"], "include_custom_clearance": false}`

	first := decodeQuote(t, do(t, s, http.MethodPost, "/quote", payload))
	second := decodeQuote(t, do(t, s, http.MethodPost, "/quote", payload))

	assert.Equal(t, first.InputHash, second.InputHash)
	assert.NotEqual(t, first.QuoteID, second.QuoteID)
	assert.Equal(t, "2", first.Quotes[0].Items[0].Seq)
}

func TestQuoteNoModeSelectedWarns(t *testing.T) {
	s := newTestServer()
	body := decodeQuote(t, do(t, s, http.MethodPost, "/quote", `{"modes": []}`))

	assert.Empty(t, body.Quotes)
	assert.Equal(t, []string{output.NoModeSelected}, body.Warnings)
}

func TestQuoteValidationError(t *testing.T) {
	s := newTestServer()
	rec := do(t, s, http.MethodPost, "/quote", `{"trailers": 0, "weight": -1, "modes": ["RORO"]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.NotEmpty(t, resp.RequestID)

	fields := map[string]string{}
	for _, f := range resp.Error.Fields {
		fields[f.Field] = f.Message
	}
	assert.Equal(t, "must be >= 1", fields["trailers"])
	assert.Equal(t, "must be >= 0", fields["weight"])
	assert.Equal(t, "must be one of: MAFI, BBK", fields["modes[0]"])
}

func TestQuoteInvalidJSON(t *testing.T) {
	s := newTestServer()
	for _, payload := range []string{`{`, `{"colour": "red"}`, `{"weight": "heavy"}`} {
		rec := do(t, s, http.MethodPost, "/quote", payload)
		require.Equal(t, http.StatusBadRequest, rec.Code, payload)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_JSON", resp.Error.Code, payload)
	}
}

func TestTariffAndDefaults(t *testing.T) {
	tr := tariff.Default()
	tr.GateHydraulic = decimal.NewFromInt(2200)
	s := NewServer("test", engine.New(tr))

	rec := do(t, s, http.MethodGet, "/tariff", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp TariffResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, tr.Fingerprint(), resp.Fingerprint)
	require.Len(t, resp.Rates, 13)
	assert.Equal(t, "gate_hydraulic", resp.Rates[2].Name)
	assert.True(t, resp.Rates[2].Value.Equal(decimal.NewFromInt(2200)))

	rec = do(t, s, http.MethodGet, "/quote/defaults", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"trailer_type":"mechanical"`)
}

func TestHealthVersionAndMetrics(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)

	rec = do(t, s, http.MethodGet, "/version", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version":"test"`)

	decodeQuote(t, do(t, s, http.MethodPost, "/quote", `{"modes": ["MAFI", "BBK"]}`))
	decodeQuote(t, do(t, s, http.MethodPost, "/quote", `{"modes": []}`))

	rec = do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	metrics := rec.Body.String()
	assert.Contains(t, metrics, `quotes_total{mode="MAFI"} 1`)
	assert.Contains(t, metrics, `quotes_total{mode="BBK"} 1`)
	assert.Contains(t, metrics, `quotes_total{mode="none"} 1`)
	assert.Contains(t, metrics, `http_requests_total{method="POST",route="/quote",status="200"} 2`)
}

func TestMetricsUnmatchedPathsShareOneSeries(t *testing.T) {
	s := newTestServer()
	for _, path := range []string{"/random-0", "/random-1", "/quotes/42", "/tariff/x"} {
		rec := do(t, s, http.MethodGet, path, "")
		require.Equal(t, http.StatusNotFound, rec.Code, path)
	}

	rec := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	metrics := rec.Body.String()
	assert.Contains(t, metrics, `http_requests_total{method="GET",route="unmatched",status="404"} 4`)
	assert.NotContains(t, metrics, "random")
	assert.NotContains(t, metrics, `route="/quotes/42"`)
}

func TestMetricsCanBeDisabled(t *testing.T) {
	s := newTestServer(WithoutMetrics())
	rec := do(t, s, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	decodeQuote(t, do(t, s, http.MethodPost, "/quote", `{}`))
}
