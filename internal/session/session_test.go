package session

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/Nick-prog/Microsoft-API-Email/internal/assemble"
	"github.com/Nick-prog/Microsoft-API-Email/internal/catalog"
	"github.com/Nick-prog/Microsoft-API-Email/internal/errors"
	"github.com/Nick-prog/Microsoft-API-Email/internal/filter"
	"github.com/Nick-prog/Microsoft-API-Email/internal/testutil"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	return New(zerolog.Nop(), catalog.Load())
}

func selectMessages(t *testing.T, sess *Session) *catalog.EndpointDescriptor {
	t.Helper()
	ep, err := sess.SelectEndpoint("list-messages")
	testutil.AssertNoError(t, err, "select endpoint")
	return ep
}

func findFilter(t *testing.T, ep *catalog.EndpointDescriptor, label string) *filter.Config {
	t.Helper()
	cfg, err := ep.FindFilter(label)
	testutil.AssertNoError(t, err, "find filter "+label)
	return cfg
}

func TestSelectEndpoint_UnknownID(t *testing.T) {
	sess := newSession(t)
	_, err := sess.SelectEndpoint("list-calendars")
	testutil.AssertErrorType(t, err, errors.ErrorTypeCatalog, "unknown endpoint")
}

func TestToggleFilter_RequiresEndpoint(t *testing.T) {
	sess := newSession(t)
	cfg := &filter.Config{Kind: filter.KindNumber, Label: "Limit", Template: "?$top={number}", ParamKey: "top"}

	_, err := sess.ToggleFilter(cfg, filter.NewValueBag().Set("number", "10"))
	testutil.AssertErrorType(t, err, errors.ErrorTypeValidation, "toggle without endpoint")
}

func TestToggleFilter_AddRemoveCycle(t *testing.T) {
	sess := newSession(t)
	ep := selectMessages(t, sess)
	cfg := findFilter(t, ep, "Filter by Read Status")

	bag := filter.NewValueBag().Set("value", "true")

	result, err := sess.ToggleFilter(cfg, bag)
	testutil.AssertNoError(t, err, "first toggle")
	testutil.AssertEqual(t, result.Added, true, "first toggle adds")
	testutil.AssertStringEqual(t, result.Fragment, "?$filter=isRead eq true", "rendered fragment")

	result, err = sess.ToggleFilter(cfg, bag)
	testutil.AssertNoError(t, err, "second toggle")
	testutil.AssertEqual(t, result.Added, false, "identical toggle removes")
	testutil.AssertEqual(t, len(sess.ActiveFilters()), 0, "selection emptied")
}

func TestToggleFilter_EditReplacesInPlace(t *testing.T) {
	sess := newSession(t)
	ep := selectMessages(t, sess)
	read := findFilter(t, ep, "Filter by Read Status")
	top := findFilter(t, ep, "Limit Results")
	importance := findFilter(t, ep, "Filter by Importance")

	mustToggle(t, sess, read, filter.NewValueBag().Set("value", "true"))
	mustToggle(t, sess, top, filter.NewValueBag().Set("number", "25"))
	mustToggle(t, sess, importance, filter.NewValueBag().Set("value", "high"))

	result, err := sess.ToggleFilter(top, filter.NewValueBag().Set("number", "50"))
	testutil.AssertNoError(t, err, "edit toggle")
	testutil.AssertEqual(t, result.Added, true, "changed value reports added")

	activeFilters := sess.ActiveFilters()
	testutil.AssertEqual(t, len(activeFilters), 3, "no duplicate entry")
	testutil.AssertStringEqual(t, activeFilters[1].Fragment, "?$top=50", "updated in place")
}

func TestToggleFilter_ValidationFailureLeavesSetUntouched(t *testing.T) {
	sess := newSession(t)
	ep := selectMessages(t, sess)
	top := findFilter(t, ep, "Limit Results")

	mustToggle(t, sess, top, filter.NewValueBag().Set("number", "25"))

	_, err := sess.ToggleFilter(top, filter.NewValueBag().Set("number", "9999"))
	testutil.AssertErrorType(t, err, errors.ErrorTypeValidation, "out of range")

	activeFilters := sess.ActiveFilters()
	testutil.AssertEqual(t, len(activeFilters), 1, "selection unchanged")
	testutil.AssertStringEqual(t, activeFilters[0].Fragment, "?$top=25", "previous fragment intact")
}

func TestToggleFilter_EmptyMultiSelectRejected(t *testing.T) {
	sess := newSession(t)
	ep := selectMessages(t, sess)
	sel := findFilter(t, ep, "Select Fields")

	_, err := sess.ToggleFilter(sel, filter.NewValueBag())
	testutil.AssertErrorType(t, err, errors.ErrorTypeValidation, "no-op fragment")
	testutil.AssertEqual(t, len(sess.ActiveFilters()), 0, "nothing added")
}

func TestToggleFilter_MultiSelectSelectionOrder(t *testing.T) {
	sess := newSession(t)
	ep := selectMessages(t, sess)
	sel := findFilter(t, ep, "Select Fields")

	bag := filter.NewValueBag()
	bag.SelectField("subject")
	bag.SelectField("from")

	result, err := sess.ToggleFilter(sel, bag)
	testutil.AssertNoError(t, err, "toggle multiselect")
	testutil.AssertStringEqual(t, result.Fragment, "?$select=subject,from", "selection order")
}

func TestToggleFilter_SurfacesWarnings(t *testing.T) {
	sess := newSession(t)
	ep := selectMessages(t, sess)
	sender := findFilter(t, ep, "Filter by Sender")

	result, err := sess.ToggleFilter(sender, filter.NewValueBag().Set("email", "not-an-address"))
	testutil.AssertNoError(t, err, "suspicious email still toggles")
	testutil.AssertEqual(t, len(result.Warnings), 1, "warning carried through")
	testutil.AssertEqual(t, result.Added, true, "filter added despite warning")
}

func TestSwitchingEndpointDiscardsSelection(t *testing.T) {
	sess := newSession(t)
	ep := selectMessages(t, sess)
	top := findFilter(t, ep, "Limit Results")
	mustToggle(t, sess, top, filter.NewValueBag().Set("number", "10"))

	_, err := sess.SelectEndpoint("list-mail-folders")
	testutil.AssertNoError(t, err, "switch endpoint")
	testutil.AssertEqual(t, len(sess.ActiveFilters()), 0, "new endpoint starts clean")

	// Coming back does not resurrect the old selection either.
	selectMessages(t, sess)
	testutil.AssertEqual(t, len(sess.ActiveFilters()), 0, "old selection discarded")
}

func TestReselectingSameEndpointKeepsSelection(t *testing.T) {
	sess := newSession(t)
	ep := selectMessages(t, sess)
	top := findFilter(t, ep, "Limit Results")
	mustToggle(t, sess, top, filter.NewValueBag().Set("number", "10"))

	selectMessages(t, sess)
	testutil.AssertEqual(t, len(sess.ActiveFilters()), 1, "reselect keeps filters")
}

func TestBuildQueryURL_EndToEnd(t *testing.T) {
	sess := newSession(t)
	ep := selectMessages(t, sess)

	sess.SetContextSegment("AAMkAGI2TG93AAA=")

	mustToggle(t, sess, findFilter(t, ep, "Filter by Read Status"),
		filter.NewValueBag().Set("value", "false"))
	mustToggle(t, sess, findFilter(t, ep, "Limit Results"),
		filter.NewValueBag().Set("number", "10"))

	url, err := sess.BuildQueryURL()
	testutil.AssertNoError(t, err, "build URL")
	testutil.AssertStringEqual(t, url,
		"https://graph.microsoft.com/v1.0/me/mailFolders/AAMkAGI2TG93AAA=/messages?$filter=isRead eq false&$top=10",
		"folder scoped URL")
}

func TestBuildQueryURL_NoFiltersReturnsBase(t *testing.T) {
	sess := newSession(t)
	selectMessages(t, sess)

	url, err := sess.BuildQueryURL()
	testutil.AssertNoError(t, err, "build URL")
	testutil.AssertStringEqual(t, url, "https://graph.microsoft.com/v1.0/me/messages", "bare base URL")
}

func TestBuildQueryURL_DefaultTopOption(t *testing.T) {
	sess := newSession(t)
	selectMessages(t, sess)

	url, err := sess.BuildQueryURL(assemble.WithDefaultTop())
	testutil.AssertNoError(t, err, "build URL")
	testutil.AssertStringEqual(t, url, "https://graph.microsoft.com/v1.0/me/messages?$top=100", "default top")
}

func TestBuildQueryURL_RequiresEndpoint(t *testing.T) {
	sess := newSession(t)
	_, err := sess.BuildQueryURL()
	testutil.AssertErrorType(t, err, errors.ErrorTypeValidation, "no endpoint")
}

func TestRenderPreview_DoesNotTouchSelection(t *testing.T) {
	sess := newSession(t)
	ep := selectMessages(t, sess)
	top := findFilter(t, ep, "Limit Results")

	fragment, err := sess.RenderPreview(top, filter.NewValueBag().Set("number", "42"))
	testutil.AssertNoError(t, err, "preview")
	testutil.AssertStringEqual(t, fragment, "?$top=42", "preview fragment")
	testutil.AssertEqual(t, len(sess.ActiveFilters()), 0, "preview adds nothing")
}

func TestClearFilters(t *testing.T) {
	sess := newSession(t)
	ep := selectMessages(t, sess)
	mustToggle(t, sess, findFilter(t, ep, "Limit Results"), filter.NewValueBag().Set("number", "10"))

	sess.ClearFilters()
	testutil.AssertEqual(t, len(sess.ActiveFilters()), 0, "cleared")

	sess.ClearFilters() // idempotent
	testutil.AssertEqual(t, len(sess.ActiveFilters()), 0, "still empty")
}

func TestIsActive(t *testing.T) {
	sess := newSession(t)
	ep := selectMessages(t, sess)
	top := findFilter(t, ep, "Limit Results")
	mustToggle(t, sess, top, filter.NewValueBag().Set("number", "10"))

	testutil.AssertEqual(t, sess.IsActive("top", "?$top=10"), true, "active fragment")
	testutil.AssertEqual(t, sess.IsActive("top", "?$top=25"), false, "other fragment")
}

func mustToggle(t *testing.T, sess *Session, cfg *filter.Config, bag *filter.ValueBag) {
	t.Helper()
	result, err := sess.ToggleFilter(cfg, bag)
	testutil.AssertNoError(t, err, "toggle "+cfg.Label)
	if !result.Added {
		t.Fatalf("toggle %s: expected add, got remove", cfg.Label)
	}
}
