package listing

import "encoding/json"

type Kind string

const (
	KindFile   Kind = "File"
	KindFolder Kind = "Folder"
)

// Object is the kind-specific part of an Entry. File and Folder are the only implementations.
type Object interface {
	Kind() Kind
	isObject()
}

// File carries the size in bytes when the child could be stat'ed.
type File struct {
	Size *int64
}

type Folder struct{}

func (File) Kind() Kind   { return KindFile }
func (File) isObject()    {}
func (Folder) Kind() Kind { return KindFolder }
func (Folder) isObject()  {}

// Entry is one immediate child of a listed directory.
type Entry struct {
	Path      string
	Name      string
	Object    Object
	Relevance int
	// Modified is the modification time as seconds since the Unix epoch, nil when unknown.
	Modified *string
}

func (e Entry) Kind() Kind {
	return e.Object.Kind()
}

func (e Entry) Size() (int64, bool) {
	file, ok := e.Object.(File)
	if !ok || file.Size == nil {
		return 0, false
	}
	return *file.Size, true
}

func (e Entry) withRelevance(relevance int) Entry {
	e.Relevance = relevance
	return e
}

type entryJSON struct {
	Path       string  `json:"path"`
	Name       string  `json:"name"`
	ObjectType Kind    `json:"object_type"`
	Relevance  int     `json:"relevance"`
	Size       *int64  `json:"size,omitempty"`
	Modified   *string `json:"modified,omitempty"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	out := entryJSON{
		Path:       e.Path,
		Name:       e.Name,
		ObjectType: e.Kind(),
		Relevance:  e.Relevance,
		Modified:   e.Modified,
	}
	if size, ok := e.Size(); ok {
		out.Size = &size
	}
	return json.Marshal(out)
}
