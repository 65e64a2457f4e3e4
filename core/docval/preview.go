package docval

import (
	"path"
	"strings"
)

// PreviewKind routes a document to its rendering strategy.
type PreviewKind int

const (
	PreviewImage PreviewKind = iota
	PreviewPDF
	PreviewNone // unsupported: forced-download fallback
)

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Classify picks the preview strategy by file extension.
func Classify(name string) PreviewKind {
	ext := strings.ToLower(path.Ext(name))
	switch {
	case imageExts[ext]:
		return PreviewImage
	case ext == ".pdf":
		return PreviewPDF
	default:
		return PreviewNone
	}
}

// ResolveURL turns a document location into a fully-qualified URL against
// the storage base. Handles the three relative shapes the backend emits:
// "/storage/..." paths, other absolute paths, and bare filenames.
func ResolveURL(storageBase, loc string) string {
	storageBase = strings.TrimRight(storageBase, "/")
	switch {
	case loc == "":
		return ""
	case strings.HasPrefix(loc, "http://"), strings.HasPrefix(loc, "https://"):
		return loc
	case strings.HasPrefix(loc, "/storage/"):
		return storageBase + loc
	case strings.HasPrefix(loc, "/"):
		return storageBase + loc
	default:
		return storageBase + "/storage/" + loc
	}
}

// PreviewState tracks per-document rendering state. Load failures flip a
// flag and present an open-in-new-tab escape hatch instead of retry-looping.
type PreviewState struct {
	Doc  Documento
	URL  string
	Kind PreviewKind

	ImageLoadError bool
	PDFLoadError   bool
}

// NewPreview resolves and classifies a document for rendering.
func NewPreview(storageBase string, doc Documento) *PreviewState {
	loc := doc.Location()
	return &PreviewState{
		Doc:  doc,
		URL:  ResolveURL(storageBase, loc),
		Kind: Classify(loc),
	}
}

func (p *PreviewState) MarkImageError() { p.ImageLoadError = true }
func (p *PreviewState) MarkPDFError()   { p.PDFLoadError = true }

// Failed reports whether the inline preview gave up and the escape hatch
// (open in new tab / download) should be shown.
func (p *PreviewState) Failed() bool {
	switch p.Kind {
	case PreviewImage:
		return p.ImageLoadError
	case PreviewPDF:
		return p.PDFLoadError
	default:
		return true
	}
}
