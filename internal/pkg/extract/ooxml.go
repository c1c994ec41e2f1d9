package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// OOXML documents are zip archives of XML parts. There is no pack-and-go
// library worth carrying for the two parts we need, so the text is pulled
// straight out of word/document.xml and ppt/slides/slideN.xml.

var slidePattern = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// fromDocx concatenates paragraph text, one paragraph per line.
func fromDocx(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	part, err := readArchiveFile(archive, "word/document.xml")
	if err != nil {
		return "", err
	}
	return paragraphText(part, "p", "t")
}

// fromPptx concatenates the text of every text-bearing shape, slide by
// slide, in slide order.
func fromPptx(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pptx: %w", err)
	}

	type slide struct {
		number int
		name   string
	}
	var slides []slide
	for _, f := range archive.File {
		m := slidePattern.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		slides = append(slides, slide{number: n, name: f.Name})
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].number < slides[j].number })

	var sb strings.Builder
	for _, s := range slides {
		part, err := readArchiveFile(archive, s.name)
		if err != nil {
			continue
		}
		text, err := paragraphText(part, "p", "t")
		if err != nil || text == "" {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// paragraphText walks an XML part collecting character data inside
// <run> elements, emitting one line per <para> element.
func paragraphText(part []byte, para, run string) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(part))

	var sb strings.Builder
	var line strings.Builder
	inRun := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse xml part: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == run {
				inRun = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case run:
				inRun = false
			case para:
				sb.WriteString(line.String())
				sb.WriteString("\n")
				line.Reset()
			}
		case xml.CharData:
			if inRun {
				line.Write(t)
			}
		}
	}
	return sb.String(), nil
}

func readArchiveFile(archive *zip.Reader, name string) ([]byte, error) {
	for _, f := range archive.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%s not found in archive", name)
}
