package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	slideNameRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)
	textRunRe   = regexp.MustCompile(`<a:t>(.*?)</a:t>`)
)

// fromPPTX unzips a PowerPoint archive and pulls text runs out of each
// slide's XML, keeping slide order
func fromPPTX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", wrapf(KindExtractionFailed, err, "open pptx archive")
	}

	type slide struct {
		num  int
		file *zip.File
	}
	var slides []slide
	for _, f := range zr.File {
		m := slideNameRe.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		num, _ := strconv.Atoi(m[1])
		slides = append(slides, slide{num: num, file: f})
	}

	if len(slides) == 0 {
		return "", errf(KindExtractionFailed, "no slides found in PowerPoint file")
	}

	sort.Slice(slides, func(i, j int) bool { return slides[i].num < slides[j].num })

	var sb strings.Builder
	for _, s := range slides {
		xmlText, err := readZipFile(s.file)
		if err != nil {
			return "", wrapf(KindExtractionFailed, err, "read slide %d", s.num)
		}

		var runs []string
		for _, m := range textRunRe.FindAllStringSubmatch(xmlText, -1) {
			runs = append(runs, m[1])
		}

		slideText := strings.TrimSpace(strings.Join(runs, " "))
		if slideText != "" {
			fmt.Fprintf(&sb, "[Slide %d]: %s\n\n", s.num, slideText)
		}
	}

	return sb.String(), nil
}

func readZipFile(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
