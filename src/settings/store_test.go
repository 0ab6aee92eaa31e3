package settings_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/fungalore/aurral/src/assert"
	"github.com/fungalore/aurral/src/library"
	"github.com/fungalore/aurral/src/settings"
)

func getTestStore(ctx context.Context, t *testing.T) (*settings.Store, func()) {
	lib, err := library.NewLocalLibrary(
		ctx,
		library.SQLiteMemoryFile,
		os.DirFS("../../sqls"),
	)
	if err != nil {
		t.Fatalf("Initializing library: %s", err)
	}
	if err := lib.Initialize(); err != nil {
		t.Fatalf("Applying migrations: %s", err)
	}

	return settings.NewStore(lib.DB()), func() { _ = lib.Truncate() }
}

// TestImageRows makes sure storing, overwriting and batch getting cover
// image rows works, including the empty-URL rows.
func TestImageRows(t *testing.T) {
	ctx := context.Background()
	store, cleanup := getTestStore(ctx, t)
	defer cleanup()

	_, err := store.GetImage(ctx, "artist/no-such-key")
	if !errors.Is(err, settings.ErrNotFound) {
		t.Fatalf("expected ErrNotFound but got %+v", err)
	}

	const key = "artist/8bfac288-ccc5-448d-9573-c33ea2aa5c30"

	err = store.SetImage(ctx, key, "https://images.example.com/one.jpg")
	assert.NilErr(t, err, "setting image row")

	row, err := store.GetImage(ctx, key)
	assert.NilErr(t, err, "getting image row")
	assert.Equal(t, "https://images.example.com/one.jpg", row.URL)
	assert.True(t, !row.UpdatedAt.IsZero(), "expected updated_at to be set")

	// Overwriting with the empty URL records a confirmed absence.
	err = store.SetImage(ctx, key, "")
	assert.NilErr(t, err, "overwriting image row")

	row, err = store.GetImage(ctx, key)
	assert.NilErr(t, err, "getting overwritten image row")
	assert.Equal(t, "", row.URL)

	err = store.SetImage(ctx, "releasegroup/second", "https://images.example.com/two.jpg")
	assert.NilErr(t, err, "setting second image row")

	found, err := store.GetImages(ctx, []string{
		key,
		"releasegroup/second",
		"releasegroup/absent",
	})
	assert.NilErr(t, err, "getting image rows in batch")
	assert.Equal(t, 2, len(found))
	assert.Equal(t, "", found[key].URL)
	assert.Equal(t, "https://images.example.com/two.jpg", found["releasegroup/second"].URL)

	if _, ok := found["releasegroup/absent"]; ok {
		t.Errorf("key with no row must be absent from the batch result")
	}
}

// TestArtistOverrides makes sure overrides are stored and that setting or
// removing one forgets the artist's remembered cover.
func TestArtistOverrides(t *testing.T) {
	ctx := context.Background()
	store, cleanup := getTestStore(ctx, t)
	defer cleanup()

	const mbid = "8bfac288-ccc5-448d-9573-c33ea2aa5c30"

	_, err := store.GetArtistOverride(ctx, mbid)
	if !errors.Is(err, settings.ErrNotFound) {
		t.Fatalf("expected ErrNotFound but got %+v", err)
	}

	err = store.SetImage(ctx, "artist/"+mbid, "https://images.example.com/old.jpg")
	assert.NilErr(t, err, "setting image row")

	over := settings.Override{
		MBID:            mbid,
		Name:            "Red Hot Chili Peppers",
		AlternateMBID:   "5c2b4f55-ab66-4e92-8fe8-ec3d2a759e08",
		ImageProviderID: "93976",
	}
	err = store.SetArtistOverride(ctx, over)
	assert.NilErr(t, err, "setting artist override")

	found, err := store.GetArtistOverride(ctx, mbid)
	assert.NilErr(t, err, "getting artist override")
	assert.Equal(t, over, found)

	// The override invalidated the remembered cover.
	_, err = store.GetImage(ctx, "artist/"+mbid)
	if !errors.Is(err, settings.ErrNotFound) {
		t.Errorf("expected the cover row to be gone but got %+v", err)
	}

	err = store.SetImage(ctx, "artist/"+mbid, "https://images.example.com/new.jpg")
	assert.NilErr(t, err, "setting image row again")

	err = store.RemoveArtistOverride(ctx, mbid)
	assert.NilErr(t, err, "removing artist override")

	_, err = store.GetArtistOverride(ctx, mbid)
	if !errors.Is(err, settings.ErrNotFound) {
		t.Errorf("expected the override to be gone but got %+v", err)
	}
	_, err = store.GetImage(ctx, "artist/"+mbid)
	if !errors.Is(err, settings.ErrNotFound) {
		t.Errorf("expected the cover row to be gone but got %+v", err)
	}
}
