package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
	"pkt.systems/mdw"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("pkt.systems/mdw")
}

func main() {
	var (
		docName     string
		docMapPath  string
		outPath     string
		verbose     bool
		showVersion bool
	)

	flags := pflag.NewFlagSet("mdw", pflag.ExitOnError)
	flags.StringVarP(&docName, "docname", "d", "", "Current document identifier/path (derived from the input filename when empty)")
	flags.StringVarP(&docMapPath, "doc-map", "m", "", "YAML file mapping document names to output-relative URIs")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Verbose diagnostics on stderr")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: mdw [flags] [doctree.json ...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, a doctree is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if showVersion {
		fmt.Println(version.Module(), version.Current())
		return
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	args := flags.Args()
	if len(args) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "refusing to read a doctree from an interactive terminal; pipe JSON or name input files")
		flags.Usage()
		os.Exit(2)
	}

	targetURI, err := loadDocMap(docMapPath)
	if err != nil {
		log.WithError(err).Fatal("load doc map")
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		log.WithError(err).Fatal("open output")
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	inputs := inputNames(args)
	for _, name := range inputs {
		if err := renderOne(name, docName, targetURI, writer, log); err != nil {
			log.WithError(err).WithField("input", name).Fatal("render")
		}
	}
}

// inputNames returns the input file list, with "" standing in for stdin.
func inputNames(args []string) []string {
	if len(args) == 0 {
		return []string{""}
	}
	return args
}

func renderOne(name, docName string, targetURI func(string) string, w io.Writer, log *logrus.Logger) error {
	reader, closer, err := openInput(name)
	if err != nil {
		return err
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	doc, err := mdw.DecodeDocument(reader)
	if err != nil {
		return err
	}

	resolved := resolveDocName(docName, name)
	log.WithFields(logrus.Fields{"docname": resolved, "input": displayName(name)}).Debug("rendering document")

	out, err := mdw.Render(mdw.RenderRequest{
		Doc:       doc,
		DocName:   resolved,
		TargetURI: targetURI,
		Options: []mdw.RenderOption{
			mdw.WithUnknownKindFunc(func(kind mdw.NodeKind) {
				log.WithField("kind", kind).Warn("no formatting rule for node kind; rendering children only")
			}),
		},
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// resolveDocName prefers the explicit flag, then the input filename without
// its extension.
func resolveDocName(flagValue, input string) string {
	if flagValue != "" {
		return flagValue
	}
	if input == "" {
		return "index"
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return filepath.ToSlash(base)
}

func displayName(name string) string {
	if name == "" {
		return "stdin"
	}
	return name
}

// loadDocMap reads the YAML docname→URI map and returns a lookup that falls
// back to the document name itself.
func loadDocMap(path string) (func(string) string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	docMap := map[string]string{}
	if err := yaml.Unmarshal(buf, &docMap); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return func(docname string) string {
		if uri, ok := docMap[docname]; ok {
			return uri
		}
		return docname
	}, nil
}

func openInput(name string) (io.Reader, io.Closer, error) {
	if name == "" {
		return os.Stdin, nil, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}
