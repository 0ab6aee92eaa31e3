// Aurral is a metadata aggregation server for self-hosted music catalogs. It
// resolves a MusicBrainz artist ID into an enriched aggregate assembled from
// several upstream providers and streams it to clients incrementally.
//
// This file is only here to make installing with `go install` easier. The
// actual main function lives in the src package.
package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/fungalore/aurral/src"
)

var (
	// sqlFilesFS is the migrations directory which contains SQL
	// migrations for sql-migrate and the initial schema. If the
	// embedded directory name changes, remember to change it in
	// main() too.
	//
	//go:embed sqls
	sqlFilesFS embed.FS
)

func main() {
	sqls, err := fs.Sub(sqlFilesFS, "sqls")
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading sqls subFS: %s\n", err)
		os.Exit(1)
	}

	src.Main(sqls)
}
