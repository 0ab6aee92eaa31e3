/*
Package meta is responsible for getting artist metadata, cover art and artist
relations over the internet. It is the only part of the server which talks to
the upstream providers and every call it exposes fails independently from the
others.

The following APIs are used to achieve this package's objective:

  - MusicBrainz API: https://musicbrainz.org/doc/MusicBrainz_API
  - Cover Art Archive: https://musicbrainz.org/doc/Cover_Art_Archive/
  - Discogs API: https://www.discogs.com/developers/
  - Last.fm API: https://www.last.fm/api

MusicBrainz is the canonical source for artist identity, life-span, tags and
release groups. Discogs supplies artist images and a release image index.
The Cover Art Archive supplies per release group covers. Last.fm supplies
artist biographies and the similar artists relation.
*/
package meta
