package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Nick-prog/Microsoft-API-Email/internal/errors"
)

// DefaultBaseURL is the Graph API root folder listings are fetched from.
const DefaultBaseURL = "https://graph.microsoft.com/v1.0"

// maxFolderDepth caps folder-path recursion so a cyclic or absurdly deep
// mailbox cannot wedge resolution.
const maxFolderDepth = 10

// Folder is one mail folder as returned by the Graph API.
type Folder struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	TotalItemCount   int    `json:"totalItemCount"`
	UnreadItemCount  int    `json:"unreadItemCount"`
	ChildFolderCount int    `json:"childFolderCount"`
}

type folderPage struct {
	Value []Folder `json:"value"`
}

// HTTPDoer is the minimal HTTP client surface the graph package needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// FolderResolver resolves human folder paths ("Clive Forms/Upload Documents")
// to folder ids, which become the opaque context segment the URL assembler
// consumes.
type FolderResolver struct {
	logger  zerolog.Logger
	client  HTTPDoer
	tokens  TokenProvider
	baseURL string
}

// NewFolderResolver creates a resolver against the default Graph base URL.
func NewFolderResolver(logger zerolog.Logger, client HTTPDoer, tokens TokenProvider) *FolderResolver {
	return NewFolderResolverWithBaseURL(logger, client, tokens, DefaultBaseURL)
}

// NewFolderResolverWithBaseURL creates a resolver against a custom base URL,
// primarily for tests.
func NewFolderResolverWithBaseURL(logger zerolog.Logger, client HTTPDoer, tokens TokenProvider, baseURL string) *FolderResolver {
	return &FolderResolver{
		logger:  logger.With().Str("component", "folders").Logger(),
		client:  client,
		tokens:  tokens,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// ResolvePath walks a slash-separated folder path from the mailbox root and
// returns the id of the final folder. Name matching is case-insensitive,
// matching how users remember their folder names.
func (r *FolderResolver) ResolvePath(ctx context.Context, path string) (string, error) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) == 0 || segments[0] == "" {
		return "", errors.New(errors.ErrorTypeValidation, "empty folder path")
	}
	if len(segments) > maxFolderDepth {
		return "", errors.New(errors.ErrorTypeValidation, "folder path too deep").
			WithContext("path", path).
			WithContext("max_depth", maxFolderDepth)
	}

	listURL := r.baseURL + "/me/mailFolders"
	currentID := ""

	for _, name := range segments {
		folders, err := r.fetchFolders(ctx, listURL)
		if err != nil {
			return "", err
		}

		match := findFolder(folders, name)
		if match == nil {
			return "", errors.New(errors.ErrorTypeNetwork, "folder not found").
				WithContext("folder", name).
				WithContext("path", path)
		}

		currentID = match.ID
		listURL = fmt.Sprintf("%s/me/mailFolders/%s/childFolders", r.baseURL, currentID)
	}

	r.logger.Debug().Str("path", path).Str("folder_id", currentID).Msg("folder path resolved")
	return currentID, nil
}

// ListTopLevel returns the mailbox's top-level folders.
func (r *FolderResolver) ListTopLevel(ctx context.Context) ([]Folder, error) {
	return r.fetchFolders(ctx, r.baseURL+"/me/mailFolders")
}

func (r *FolderResolver) fetchFolders(ctx context.Context, listURL string) ([]Folder, error) {
	token, err := r.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeInternal, "building folder request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeNetwork, "fetching mail folders").
			WithContext("url", listURL)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeNetwork, "reading folder response").
			WithContext("url", listURL)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.ErrorTypeNetwork, "folder listing failed").
			WithContext("url", listURL).
			WithContext("status", resp.StatusCode).
			WithContext("body", truncate(string(body), 200))
	}

	var page folderPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeNetwork, "decoding folder response").
			WithContext("url", listURL)
	}

	return page.Value, nil
}

func findFolder(folders []Folder, name string) *Folder {
	for i := range folders {
		if strings.EqualFold(folders[i].DisplayName, name) {
			return &folders[i]
		}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
