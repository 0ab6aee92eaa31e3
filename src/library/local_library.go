package library

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"sync"

	// Imported for its sqlite3 database driver.
	_ "github.com/mattn/go-sqlite3"

	migrate "github.com/ironsmile/sql-migrate"
)

// SQLiteMemoryFile can be used as a database path for NewLocalLibrary when
// the database should be created in memory. Mostly useful for tests.
const SQLiteMemoryFile = "file::memory:?cache=shared"

// sqlMigrateDirectory is the directory within the `sqlFilesFS` which contains
// the .sql files for sql-migrate.
const sqlMigrateDirectory = "migrations"

// LocalLibrary implements the Library interface on top of a sqlite database.
// All database access goes through a single worker goroutine.
type LocalLibrary struct {
	database   string
	db         *sql.DB
	sqlFilesFS fs.FS

	ctx       context.Context
	ctxCancel context.CancelFunc

	dbExecutes chan DatabaseExecutable
	waitClosed sync.WaitGroup
}

// NewLocalLibrary returns a LocalLibrary which uses for database the file
// specified by databasePath. sqlFilesFS must contain the `migrations`
// directory with the database schema.
func NewLocalLibrary(
	ctx context.Context,
	databasePath string,
	sqlFilesFS fs.FS,
) (*LocalLibrary, error) {
	lib := &LocalLibrary{
		database:   databasePath,
		sqlFilesFS: sqlFilesFS,
	}
	lib.ctx, lib.ctxCancel = context.WithCancel(ctx)

	var err error
	lib.db, err = sql.Open("sqlite3", lib.database)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go lib.databaseWorker(&wg)
	wg.Wait()

	return lib, nil
}

// Initialize makes sure the library database schema is in place.
func (lib *LocalLibrary) Initialize() error {
	return lib.executeDBJobAndWait(func(db *sql.DB) error {
		return lib.applyMigrations(db)
	})
}

// applyMigrations reads the database migrations dir and applies them to the
// currently open database if it is necessary.
func (lib *LocalLibrary) applyMigrations(db *sql.DB) error {
	migrationFiles, err := fs.Sub(lib.sqlFilesFS, sqlMigrateDirectory)
	if err != nil {
		return fmt.Errorf("locating migrate dir within sqlFiles fs.FS failed: %w", err)
	}

	migrations := &migrate.HttpFileSystemMigrationSource{
		FileSystem: http.FS(migrationFiles),
	}

	_, err = migrate.ExecMax(db, "sqlite3", migrations, migrate.Up, 0)
	if err == nil {
		return nil
	}

	if _, ok := err.(*migrate.PlanError); ok {
		log.Printf("Error applying database migrations: %s\n", err)
		return nil
	}

	return fmt.Errorf("executing db migration failed: %w", err)
}

// GetArtistByMBID implements the Library interface using the local database.
func (lib *LocalLibrary) GetArtistByMBID(
	ctx context.Context,
	mbid string,
) (Artist, error) {
	var artist Artist

	work := func(db *sql.DB) error {
		smt, err := db.PrepareContext(ctx, `
			SELECT
				id,
				mbid,
				name,
				monitored,
				monitor_new_items,
				album_count,
				track_count
			FROM
				artists
			WHERE
				mbid = ?
		`)
		if err != nil {
			return fmt.Errorf("could not prepare artist sql statement: %w", err)
		}
		defer smt.Close()

		var monitored int64
		err = smt.QueryRowContext(ctx, mbid).Scan(
			&artist.ID,
			&artist.MBID,
			&artist.Name,
			&monitored,
			&artist.MonitorNewItems,
			&artist.Statistics.AlbumCount,
			&artist.Statistics.TrackCount,
		)
		if err == sql.ErrNoRows {
			return ErrArtistNotFound
		} else if err != nil {
			return fmt.Errorf("error getting artist from db: %w", err)
		}

		artist.Monitored = monitored != 0
		return nil
	}
	if err := lib.executeDBJobAndWait(work); err != nil {
		return Artist{}, err
	}

	return artist, nil
}

// GetAlbums implements the Library interface using the local database.
func (lib *LocalLibrary) GetAlbums(
	ctx context.Context,
	artistID int64,
) ([]Album, error) {
	var albums []Album

	work := func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, `
			SELECT
				id,
				mbid,
				title,
				primary_type,
				release_date
			FROM
				albums
			WHERE
				artist_id = ?
			ORDER BY
				id
		`, artistID)
		if err != nil {
			return fmt.Errorf("query database: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				album       Album
				releaseDate sql.NullString
			)
			if err := rows.Scan(
				&album.ID,
				&album.MBID,
				&album.Title,
				&album.PrimaryType,
				&releaseDate,
			); err != nil {
				return fmt.Errorf("scanning db result: %w", err)
			}

			album.ReleaseDate = releaseDate.String
			albums = append(albums, album)
		}

		return rows.Err()
	}
	if err := lib.executeDBJobAndWait(work); err != nil {
		return nil, err
	}

	return albums, nil
}

// InsertArtist stores an artist into the library and returns its new ID.
func (lib *LocalLibrary) InsertArtist(ctx context.Context, artist Artist) (int64, error) {
	var artistID int64

	work := func(db *sql.DB) error {
		stmt, err := db.PrepareContext(ctx, `
			INSERT OR REPLACE INTO
				artists (mbid, name, monitored, monitor_new_items,
					album_count, track_count)
			VALUES
				(?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		monitored := 0
		if artist.Monitored {
			monitored = 1
		}

		res, err := stmt.ExecContext(
			ctx,
			artist.MBID,
			artist.Name,
			monitored,
			artist.MonitorNewItems,
			artist.Statistics.AlbumCount,
			artist.Statistics.TrackCount,
		)
		if err != nil {
			return err
		}

		artistID, err = res.LastInsertId()
		return err
	}
	if err := lib.executeDBJobAndWait(work); err != nil {
		return 0, err
	}

	return artistID, nil
}

// InsertAlbum stores an album of a managed artist into the library.
func (lib *LocalLibrary) InsertAlbum(
	ctx context.Context,
	artistID int64,
	album Album,
) error {
	work := func(db *sql.DB) error {
		stmt, err := db.PrepareContext(ctx, `
			INSERT OR REPLACE INTO
				albums (artist_id, mbid, title, primary_type, release_date)
			VALUES
				(?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		var releaseDate any
		if album.ReleaseDate != "" {
			releaseDate = album.ReleaseDate
		}

		_, err = stmt.ExecContext(
			ctx,
			artistID,
			album.MBID,
			album.Title,
			album.PrimaryType,
			releaseDate,
		)
		return err
	}

	return lib.executeDBJobAndWait(work)
}

// Truncate closes the library and removes its database file from the disk.
func (lib *LocalLibrary) Truncate() error {
	lib.Close()

	// The database is in-memory. There is no file to delete.
	if lib.database == SQLiteMemoryFile {
		return nil
	}

	return os.Remove(lib.database)
}

// Close frees all resources this library object is using. Any operations on a
// closed library (except Truncate) will result in panic.
func (lib *LocalLibrary) Close() {
	lib.ctxCancel()
	lib.waitClosed.Wait()
	_ = lib.db.Close()
}

// DB returns the underlying database connection. It is shared with the other
// stores which live in the same database file.
func (lib *LocalLibrary) DB() *sql.DB {
	return lib.db
}
