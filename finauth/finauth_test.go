package finauth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	parsek "github.com/parsek-ai/parsek-go"
)

func TestResolveBaseURL(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{"live", Config{}, LiveBaseURL},
		{"mock", Config{Mock: true}, MockBaseURL},
		{"override wins over mock", Config{Mock: true, BaseURL: "https://staging.example.com/"}, "https://staging.example.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, resolveBaseURL(tc.cfg))
		})
	}
}

func TestIssueAccessTokenWireContract(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = io.WriteString(w,
			`{"token":"abc123","token_type":"Bearer","expires_dt":"2026-08-24 09:00:00"}`)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Config{
		AppKey:    "my-app-key",
		AppSecret: "my-app-secret",
		Mock:      true,
		BaseURL:   srv.URL,
	})
	resp, err := client.IssueAccessToken(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/oauth2/token", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t,
		`{"grant_type":"client_credentials","appkey":"my-app-key","secretkey":"my-app-secret"}`,
		string(gotBody))

	assert.Equal(t, "abc123", resp.Token)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "2026-08-24 09:00:00", resp.ExpiresAt)
}

func TestIssueAccessTokenRejectedIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error":"forbidden","message":"bad app secret"}`)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Config{AppKey: "k", AppSecret: "s", BaseURL: srv.URL})
	_, err := client.IssueAccessToken(context.Background())

	var apiErr *parsek.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "bad app secret", apiErr.Message)
}

func TestIssueAccessTokenMalformedBodyIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html>gateway</html>`)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Config{AppKey: "k", AppSecret: "s", BaseURL: srv.URL})
	_, err := client.IssueAccessToken(context.Background())

	var decodeErr *parsek.DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestTokenSourceAdaptsToOAuth2(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w,
			`{"token":"tok-1","token_type":"Bearer","expires_dt":"2026-08-24 09:00:00"}`)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Config{AppKey: "k", AppSecret: "s", BaseURL: srv.URL})
	tok, err := client.TokenSource(context.Background()).Token()
	require.NoError(t, err)

	assert.Equal(t, "tok-1", tok.AccessToken)
	assert.Equal(t, "Bearer", tok.TokenType)
	want, err := time.ParseInLocation("2006-01-02 15:04:05", "2026-08-24 09:00:00", time.Local)
	require.NoError(t, err)
	assert.True(t, tok.Expiry.Equal(want))
}

func signedTestJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestTokenExpiryReadsExpClaim(t *testing.T) {
	exp := time.Now().Add(6 * time.Hour).Truncate(time.Second)
	got, err := TokenExpiry(signedTestJWT(t, exp))
	require.NoError(t, err)
	assert.True(t, got.Equal(exp))
}

func TestTokenExpiryRejectsOpaqueToken(t *testing.T) {
	_, err := TokenExpiry("not-a-jwt")
	assert.Error(t, err)
}

func TestExpiryFallsBackToJWTClaim(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	resp := &TokenResponse{Token: signedTestJWT(t, exp)}
	got, err := resp.Expiry()
	require.NoError(t, err)
	assert.True(t, got.Equal(exp))
}

func TestValid(t *testing.T) {
	future := time.Now().Add(time.Hour).Format("2006-01-02 15:04:05")
	past := time.Now().Add(-time.Hour).Format("2006-01-02 15:04:05")

	assert.True(t, (&TokenResponse{ExpiresAt: future}).Valid())
	assert.False(t, (&TokenResponse{ExpiresAt: past}).Valid())
	assert.False(t, (&TokenResponse{Token: "opaque"}).Valid())
}
