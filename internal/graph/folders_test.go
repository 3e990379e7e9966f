package graph

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Nick-prog/Microsoft-API-Email/internal/errors"
	"github.com/Nick-prog/Microsoft-API-Email/internal/testutil"
)

// folderTreeServer serves a two-level mailbox: Inbox > Receipts, Archive.
func folderTreeServer(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("authorization header: got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")

		var page map[string]interface{}
		switch r.URL.Path {
		case "/me/mailFolders":
			page = testutil.FolderPage(
				testutil.FolderEntry("id-inbox", "Inbox"),
				testutil.FolderEntry("id-archive", "Archive"),
			)
		case "/me/mailFolders/id-inbox/childFolders":
			page = testutil.FolderPage(
				testutil.FolderEntry("id-receipts", "Receipts"),
			)
		default:
			page = testutil.FolderPage()
		}

		json.NewEncoder(w).Encode(page)
	}))
}

func newTestResolver(t *testing.T, server *httptest.Server) *FolderResolver {
	t.Helper()
	return NewFolderResolverWithBaseURL(zerolog.Nop(), server.Client(), StaticToken("test-token"), server.URL)
}

func TestResolvePath_TopLevel(t *testing.T) {
	server := folderTreeServer(t)
	defer server.Close()

	resolver := newTestResolver(t, server)

	id, err := resolver.ResolvePath(context.Background(), "Inbox")
	testutil.AssertNoError(t, err, "resolve top-level folder")
	testutil.AssertStringEqual(t, id, "id-inbox", "folder id")
}

func TestResolvePath_Nested(t *testing.T) {
	server := folderTreeServer(t)
	defer server.Close()

	resolver := newTestResolver(t, server)

	id, err := resolver.ResolvePath(context.Background(), "Inbox/Receipts")
	testutil.AssertNoError(t, err, "resolve nested folder")
	testutil.AssertStringEqual(t, id, "id-receipts", "nested folder id")
}

func TestResolvePath_CaseInsensitive(t *testing.T) {
	server := folderTreeServer(t)
	defer server.Close()

	resolver := newTestResolver(t, server)

	id, err := resolver.ResolvePath(context.Background(), "inbox/receipts")
	testutil.AssertNoError(t, err, "case-insensitive resolution")
	testutil.AssertStringEqual(t, id, "id-receipts", "nested folder id")
}

func TestResolvePath_TrimsSlashes(t *testing.T) {
	server := folderTreeServer(t)
	defer server.Close()

	resolver := newTestResolver(t, server)

	id, err := resolver.ResolvePath(context.Background(), "/Inbox/")
	testutil.AssertNoError(t, err, "surrounding slashes ignored")
	testutil.AssertStringEqual(t, id, "id-inbox", "folder id")
}

func TestResolvePath_NotFound(t *testing.T) {
	server := folderTreeServer(t)
	defer server.Close()

	resolver := newTestResolver(t, server)

	_, err := resolver.ResolvePath(context.Background(), "Inbox/Taxes")
	testutil.AssertErrorType(t, err, errors.ErrorTypeNetwork, "unknown child folder")
	testutil.AssertErrorContains(t, err, "folder not found", "not-found message")
}

func TestResolvePath_EmptyPath(t *testing.T) {
	server := folderTreeServer(t)
	defer server.Close()

	resolver := newTestResolver(t, server)

	_, err := resolver.ResolvePath(context.Background(), "")
	testutil.AssertErrorType(t, err, errors.ErrorTypeValidation, "empty path")

	_, err = resolver.ResolvePath(context.Background(), "///")
	testutil.AssertErrorType(t, err, errors.ErrorTypeValidation, "slash-only path")
}

func TestResolvePath_DepthCap(t *testing.T) {
	server := folderTreeServer(t)
	defer server.Close()

	resolver := newTestResolver(t, server)

	deep := strings.Repeat("Inbox/", maxFolderDepth+1)
	_, err := resolver.ResolvePath(context.Background(), deep)
	testutil.AssertErrorType(t, err, errors.ErrorTypeValidation, "path beyond depth cap")
}

func TestResolvePath_APIFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":"InvalidAuthenticationToken"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	resolver := newTestResolver(t, server)

	_, err := resolver.ResolvePath(context.Background(), "Inbox")
	testutil.AssertErrorType(t, err, errors.ErrorTypeNetwork, "non-200 listing")
}

func TestResolvePath_MissingToken(t *testing.T) {
	server := folderTreeServer(t)
	defer server.Close()

	resolver := NewFolderResolverWithBaseURL(zerolog.Nop(), server.Client(), StaticToken(""), server.URL)

	_, err := resolver.ResolvePath(context.Background(), "Inbox")
	testutil.AssertErrorType(t, err, errors.ErrorTypeAuth, "empty token")
}

func TestListTopLevel(t *testing.T) {
	server := folderTreeServer(t)
	defer server.Close()

	resolver := newTestResolver(t, server)

	folders, err := resolver.ListTopLevel(context.Background())
	testutil.AssertNoError(t, err, "list top-level folders")
	if len(folders) != 2 {
		t.Fatalf("folders: got %d, expected 2", len(folders))
	}
	testutil.AssertStringEqual(t, folders[0].DisplayName, "Inbox", "first folder")
	testutil.AssertStringEqual(t, folders[1].DisplayName, "Archive", "second folder")
}
