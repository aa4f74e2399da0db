package theme

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/prefs"
	"github.com/alexisbeaulieu97/folio/internal/render"
)

type brokenStore struct {
	getErr error
	setErr error
}

func (b brokenStore) Get(string) (string, bool, error) { return "", false, b.getErr }
func (b brokenStore) Set(string, string) error { return b.setErr }

func homePage(classes ...string) (*render.Document, *render.Element) {
	btn := render.New(render.KindButton).WithID(ToggleID)
	root := render.New(render.KindBlock).WithClass(classes...).Append(btn)
	return render.NewDocument("home", root), btn
}

func TestParse(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"light", "dark"} {
		got, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, Theme(s), got)
	}
	for _, s := range []string{"", "Dark", "theme-dark", "blue"} {
		_, err := Parse(s)
		assert.Error(t, err, s)
	}
	assert.Equal(t, Light, Dark.Opposite())
	assert.Equal(t, Dark, Light.Opposite())
	assert.Equal(t, Dark, Theme("").Opposite())
}

func TestToggleRoundTrip(t *testing.T) {
	t.Parallel()

	store := prefs.NewMemoryStore()
	doc, btn := homePage("dark")
	c := Setup(doc, store, Dark, nil)

	btn.Focus()
	btn.Dispatch(render.EventClick)

	assert.Equal(t, Light, c.Current())
	assert.Equal(t, "light", doc.Root().ClassName())
	assert.False(t, btn.Focused(), "toggle control loses focus after a click")
	saved, ok, _ := store.Get(StorageKey)
	assert.True(t, ok)
	assert.Equal(t, "light", saved)

	assert.Equal(t, Dark, c.Toggle())
	assert.Equal(t, "dark", doc.Root().ClassName())
	saved, _, _ = store.Get(StorageKey)
	assert.Equal(t, "dark", saved)
}

func TestToggleKeepsOtherClassesAndPosition(t *testing.T) {
	t.Parallel()

	doc, _ := homePage("page", "light", "show-focus-outline")
	c := Setup(doc, prefs.NewMemoryStore(), Dark, nil)

	assert.Equal(t, Dark, c.Toggle())
	assert.Equal(t, "page dark show-focus-outline", doc.Root().ClassName())
}

func TestToggleWithoutMarkerStillPersists(t *testing.T) {
	t.Parallel()

	store := prefs.NewMemoryStore()
	doc, _ := homePage("page")
	c := Setup(doc, store, Dark, nil)

	assert.Equal(t, Dark, c.Toggle())
	assert.Equal(t, "page", doc.Root().ClassName(), "replace only acts on a present marker")
	saved, _, _ := store.Get(StorageKey)
	assert.Equal(t, "dark", saved)
}

func TestRestoreReplacesClassList(t *testing.T) {
	t.Parallel()

	store := prefs.NewMemoryStore()
	require.NoError(t, store.Set(StorageKey, "light"))

	doc, _ := homePage("dark", "extra")
	c := Setup(doc, store, Dark, nil)

	assert.Equal(t, Light, c.Current())
	assert.Equal(t, "light", doc.Root().ClassName())
}

func TestRestoreWithoutStoredValueLeavesRoot(t *testing.T) {
	t.Parallel()

	doc, _ := homePage("dark", "extra")
	Setup(doc, prefs.NewMemoryStore(), Light, nil)
	assert.Equal(t, "dark extra", doc.Root().ClassName())
}

func TestRestoreFallsBackOnUnknownValue(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "warn", Writer: buf})
	require.NoError(t, err)

	store := prefs.NewMemoryStore()
	require.NoError(t, store.Set(StorageKey, "neon extra"))

	doc, _ := homePage("dark")
	c := Setup(doc, store, Light, log)

	assert.Equal(t, Light, c.Current())
	assert.Equal(t, "light", doc.Root().ClassName())
	assert.Contains(t, buf.String(), "ignoring stored theme")
}

func TestInvalidFallbackBecomesDark(t *testing.T) {
	t.Parallel()

	store := prefs.NewMemoryStore()
	require.NoError(t, store.Set(StorageKey, "neon"))
	doc, _ := homePage()
	c := Setup(doc, store, Theme("neon"), nil)
	assert.Equal(t, Dark, c.Current())
}

func TestToggleWithoutControlIsNoop(t *testing.T) {
	t.Parallel()

	store := prefs.NewMemoryStore()
	root := render.New(render.KindBlock).WithClass("dark")
	c := Setup(render.NewDocument("skills", root), store, Dark, nil)

	assert.Equal(t, Dark, c.Toggle())
	assert.Equal(t, "dark", root.ClassName())
	_, ok, _ := store.Get(StorageKey)
	assert.False(t, ok)
}

func TestStoreFailuresAreLoggedNotFatal(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "warn", Writer: buf})
	require.NoError(t, err)

	doc, _ := homePage("dark")
	c := Setup(doc, brokenStore{getErr: errors.New("locked"), setErr: errors.New("read-only")}, Dark, log)

	assert.Equal(t, Light, c.Toggle())
	assert.Equal(t, "light", doc.Root().ClassName())
	assert.Contains(t, buf.String(), "theme preference unreadable")
	assert.Contains(t, buf.String(), "theme preference not saved")
}

func TestSetAppliesAndPersists(t *testing.T) {
	t.Parallel()

	store := prefs.NewMemoryStore()
	doc, _ := homePage("page", "dark")
	c := Setup(doc, store, Dark, nil)

	require.NoError(t, c.Set(Light))
	assert.Equal(t, "page light", doc.Root().ClassName())
	saved, _, _ := store.Get(StorageKey)
	assert.Equal(t, "light", saved)

	assert.Error(t, c.Set(Theme("sepia")))
}
