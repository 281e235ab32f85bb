package stopwords

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"lang-detect/api/internal/classify/types"
	"lang-detect/api/internal/tokenize"
)

//go:embed data/russian data/italian
var embedded embed.FS

// Reference files use the NLTK corpus names: one word per line.
var fileNames = map[types.Language]string{
	types.LangRu: "russian",
	types.LangIt: "italian",
}

var (
	ErrUnknownLanguage  = errors.New("stopwords: unknown language")
	ErrMissingReference = errors.New("stopwords: reference data unavailable")
)

// Reference holds the stopword lists of the reference languages.
// It is read-only after construction and safe for concurrent use.
type Reference struct {
	lists map[types.Language][]string
	sets  map[types.Language]map[string]struct{}
}

// New builds a Reference from ready lists. Every language in types.References
// must have a non-empty list.
func New(lists map[types.Language][]string) (*Reference, error) {
	r := &Reference{
		lists: make(map[types.Language][]string, len(lists)),
		sets:  make(map[types.Language]map[string]struct{}, len(lists)),
	}
	for _, lang := range types.References {
		words := lists[lang]
		if len(words) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingReference, lang)
		}
		set := make(map[string]struct{}, len(words))
		list := make([]string, 0, len(words))
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w == "" {
				continue
			}
			if _, dup := set[w]; dup {
				continue
			}
			set[w] = struct{}{}
			list = append(list, w)
		}
		r.lists[lang] = list
		r.sets[lang] = set
	}
	return r, nil
}

// Load reads the reference lists from dir, or from the embedded copy when
// dir is empty. A missing or empty list is ErrMissingReference.
func Load(dir string) (*Reference, error) {
	if strings.TrimSpace(dir) == "" {
		return LoadFS(embedded, "data")
	}
	return LoadFS(os.DirFS(dir), ".")
}

// LoadFS reads the "russian" and "italian" lists under root in fsys.
func LoadFS(fsys fs.FS, root string) (*Reference, error) {
	lists := make(map[types.Language][]string, len(fileNames))
	for _, lang := range types.References {
		words, err := readList(fsys, path.Join(root, fileNames[lang]))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMissingReference, lang, err)
		}
		lists[lang] = words
	}
	return New(lists)
}

// MustLoad is Load that panics; for process start only.
func MustLoad(dir string) *Reference {
	r, err := Load(dir)
	if err != nil {
		panic(err)
	}
	return r
}

// Stopwords returns the full list for lang in file order.
func (r *Reference) Stopwords(lang types.Language) ([]string, error) {
	list, ok := r.lists[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	return slices.Clone(list), nil
}

// Short returns the stopwords of lang that are at most maxLen letters long.
func (r *Reference) Short(lang types.Language, maxLen int) ([]string, error) {
	list, ok := r.lists[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	return tokenize.Short(list, maxLen), nil
}

// Contains reports whether word is a stopword of lang.
func (r *Reference) Contains(lang types.Language, word string) bool {
	_, ok := r.sets[lang][word]
	return ok
}

func readList(fsys fs.FS, name string) ([]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, errors.New("empty list")
	}
	return words, nil
}
