// font wraps the parsing of .ttf and .otf files for ttex sessions.
// Parsed fonts keep referencing the raw bytes they were parsed from,
// so the byte slices are returned alongside and must stay alive and
// unmodified for as long as the font is in use.
package font
