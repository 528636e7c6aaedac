// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pom

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/net/html/charset"

	"github.com/antiprint/crxcheck/pkg/errors"
)

const (
	// MavenNamespace is the XML namespace of Maven 4.0.0 project descriptors.
	MavenNamespace = "http://maven.apache.org/POM/4.0.0"

	// VersionElement is the local name of the version element.
	VersionElement = "version"
)

// Descriptor holds the top-level elements of a parsed build descriptor
// that the checks care about.
type Descriptor struct {
	// Path is the file the descriptor was read from, if any.
	Path string

	// Namespace is the namespace top-level elements were matched in.
	Namespace string

	// Root is the name of the document element.
	Root xml.Name

	// versions holds the text of every top-level version element in document order.
	versions []string
}

// Load opens and parses the descriptor at path, matching top-level
// elements in namespace. An empty namespace selects MavenNamespace.
//
// Returns an ErrCodeIO error if the file cannot be opened and an
// ErrCodeParse error if it is not well-formed XML.
func Load(path, namespace string) (*Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeIO, "failed to read descriptor", err,
			map[string]any{"path": path})
	}
	defer f.Close()

	d, err := Parse(f, namespace)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeParse,
			fmt.Sprintf("failed to parse descriptor %s", path), err,
			map[string]any{"path": path})
	}
	d.Path = path

	slog.Debug("loaded descriptor",
		"path", path,
		"root", d.Root.Local,
		"namespace", d.Namespace,
		"versions", len(d.versions))

	return d, nil
}

// Parse reads a descriptor document from r. Only direct children of the
// document element are inspected; nested version elements (for example
// the parent or dependency versions of a POM) are ignored.
func Parse(r io.Reader, namespace string) (*Descriptor, error) {
	if namespace == "" {
		namespace = MavenNamespace
	}

	d := &Descriptor{Namespace: namespace}

	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	depth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				if d.Root.Local != "" {
					return nil, fmt.Errorf("multiple root elements: %s and %s", d.Root.Local, t.Name.Local)
				}
				d.Root = t.Name
			}
			if depth == 1 && t.Name.Space == namespace && t.Name.Local == VersionElement {
				var text string
				if err := dec.DecodeElement(&text, &t); err != nil {
					return nil, err
				}
				d.versions = append(d.versions, text)
				continue
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}

	if d.Root.Local == "" {
		return nil, fmt.Errorf("document has no root element")
	}

	return d, nil
}

// Version returns the text of the first top-level version element.
// A document without one yields ErrCodeMissingElement.
func (d *Descriptor) Version() (string, error) {
	if len(d.versions) == 0 {
		return "", errors.NewWithContext(errors.ErrCodeMissingElement,
			fmt.Sprintf("descriptor %s has no {%s}%s element", d.Path, d.Namespace, VersionElement),
			map[string]any{"path": d.Path, "namespace": d.Namespace})
	}
	return d.versions[0], nil
}
