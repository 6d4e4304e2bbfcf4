package entity

type PageContent struct {
	URL   string
	Title string
	HTML  string
}

// Screenshot is a captured page image. Path is set once the capture has been
// written to disk.
type Screenshot struct {
	Data   []byte
	Format string
	Width  int
	Height int
	Path   string
}
