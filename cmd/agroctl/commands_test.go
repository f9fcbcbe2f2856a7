package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrorent-backend/internal/security"
)

const cliSecret = "0123456789abcdef0123456789abcdef"

func writeCLIConfig(t *testing.T) string {
	t.Helper()
	body := `
server: {port: 50051}
database: {host: localhost, user: agrorent, database: agrorent}
jwt: {secret: ` + cliSecret + `, issuer: agrorent-idp}
payment: {webhook_secret: whsec}
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestIssueToken(t *testing.T) {
	uid := uuid.New()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"issue-token", uid.String(), "--config", writeCLIConfig(t), "--role", "owner"})

	require.NoError(t, root.Execute())

	claims, err := security.NewTokenManager(cliSecret, "agrorent-idp", time.Hour).ValidateToken(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, uid, claims.UserID)
	assert.Equal(t, []string{"owner"}, claims.Roles)
}

func TestIssueToken_BadUserID(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"issue-token", "42", "--config", writeCLIConfig(t)})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid user id")
}

func TestCommandTree(t *testing.T) {
	root := newRootCmd()
	for _, path := range [][]string{{"migrate", "up"}, {"migrate", "down"}, {"migrate", "status"}, {"rebuild-ratings"}, {"issue-token"}} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}
