// The Main function of Aurral. It sets everything up: the configuration,
// the local library database, the metadata client and the web server.
//
// At the moment it is in package src because I import it from the project's
// root folder.
package src

import (
	"context"
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/afero"

	"github.com/fungalore/aurral/src/config"
	"github.com/fungalore/aurral/src/daemon"
	"github.com/fungalore/aurral/src/helpers"
	"github.com/fungalore/aurral/src/library"
	"github.com/fungalore/aurral/src/meta"
	"github.com/fungalore/aurral/src/settings"
	"github.com/fungalore/aurral/src/version"
	"github.com/fungalore/aurral/src/webserver"
)

var (
	pidFile     string
	showVersion bool
)

func init() {
	flag.StringVar(&pidFile, "p", "pidfile.pid",
		"Pidfile. Relative paths are resolved against the user path.")
	flag.BoolVar(&showVersion, "v", false, "Print the program version.")
}

// Main is the only thing run in the project's root main.go file. For all
// intents and purposes this is the main function. sqlFilesFS must contain
// the `migrations` directory with the SQL files for the library database
// schema.
func Main(sqlFilesFS fs.FS) {
	flag.Parse()

	if showVersion {
		version.Print(os.Stdout)
		os.Exit(0)
	}

	userPath, err := helpers.ProjectUserPath()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}

	cfg, err := config.FindAndParse(userPath)
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}

	appfs := afero.NewOsFs()

	if cfg.LogFile != "" {
		logFilePath := helpers.AbsolutePath(cfg.LogFile, userPath)
		if err := helpers.SetLogsFile(appfs, logFilePath); err != nil {
			log.Println(err)
			os.Exit(1)
		}
	}

	pidFilePath := helpers.AbsolutePath(pidFile, userPath)
	if err := helpers.SetUpPidFile(appfs, pidFilePath); err != nil {
		log.Println(err)
		os.Exit(1)
	}

	ctx, cancelCtx := context.WithCancel(context.Background())
	defer cancelCtx()

	lib, err := getLibrary(ctx, userPath, cfg, sqlFilesFS)
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}

	store := settings.NewStore(lib.DB())
	src := getMetaClient(cfg)

	srv := webserver.NewServer(ctx, cfg, lib, store, src)
	srv.Serve()
	log.Printf("Listening on %s\n", cfg.Listen)

	stopCh := make(chan os.Signal, 2)
	signal.Notify(stopCh, daemon.StopSignals...)
	go func() {
		sig := <-stopCh
		log.Printf("Received %s. Stopping.\n", sig)
		srv.Stop()
	}()

	srv.Wait()

	cancelCtx()
	lib.Close()

	if err := appfs.Remove(pidFilePath); err != nil {
		log.Printf("Was not able to remove the pidfile: %s\n", err)
	}
}

// getLibrary returns an initialized local library which stores its sqlite
// database in the user path directory unless an absolute path was
// configured.
func getLibrary(
	ctx context.Context,
	userPath string,
	cfg config.Config,
	sqlFilesFS fs.FS,
) (*library.LocalLibrary, error) {
	dbPath := helpers.AbsolutePath(cfg.SqliteDatabase, userPath)

	lib, err := library.NewLocalLibrary(ctx, dbPath, sqlFilesFS)
	if err != nil {
		return nil, err
	}

	if err := lib.Initialize(); err != nil {
		lib.Close()
		return nil, err
	}

	return lib, nil
}

// getMetaClient returns the upstream providers client configured with the
// API hosts and credentials from the configuration.
func getMetaClient(cfg config.Config) *meta.Client {
	client := meta.NewClient(
		cfg.Providers.UserAgent,
		cfg.Providers.MusicBrainzDelay(),
		cfg.Providers.LastFMAPIKey,
		cfg.Providers.DiscogsAuthToken,
	)

	if cfg.Providers.MusicBrainzHost != "" {
		client.SetMusicBrainzAPIURL(cfg.Providers.MusicBrainzHost)
	}
	if cfg.Providers.LastFMHost != "" {
		client.SetLastFMAPIURL(cfg.Providers.LastFMHost)
	}
	if cfg.Providers.DiscogsHost != "" {
		client.SetDiscogsAPIURL(cfg.Providers.DiscogsHost)
	}

	return client
}
