// Package dataset owns the embedded MIME database and its one-time parse.
// The database is a JSON object mapping MIME types to ordered lists of file
// extensions, for example:
//
//	{"image/png": ["png"], "audio/mpeg": ["mp3", "mp1", "mp2"]}
//
// [Load] parses the embedded copy exactly once per process and hands every
// caller the same immutable [Table]. Query logic lives in the mimedb package;
// this package only produces the table.
package dataset
