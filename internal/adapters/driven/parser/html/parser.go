package html

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"

	"github.com/custodia-labs/aroma-cli/internal/core/domain"
	"github.com/custodia-labs/aroma-cli/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.PageParser = (*Parser)(nil)

// Attribute and selector names on cigarworld.de product pages.
const (
	ElementSelector  = "canvas.aromaimg"
	FallbackSelector = ".aromaimg"
	FlagAttr         = "data-rub"
	DigitsAttr       = "data-content"

	votesSelector  = "#tab-pane-tasting p"
	nameTableVar   = "NameArrObj"
	tobaccoNameKey = "AromaTabacNamenArr"
	generalNameKey = "AromaNamenArr"
)

var (
	votesPattern  = regexp.MustCompile(`\((\d+)\)\s*$`)
	quotedPattern = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"|'((?:[^'\\]|\\.)*)'`)
)

// Parser reads product pages.
type Parser struct{}

// New creates a new page parser.
func New() *Parser {
	return &Parser{}
}

// Parse extracts the flavour element, name table, vote count and title.
func (p *Parser) Parse(ctx context.Context, page []byte) (*domain.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := xhtml.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing html: %w", domain.ErrInvalidInput, err)
	}
	doc := goquery.NewDocumentFromNode(root)

	element, err := readElement(doc)
	if err != nil {
		return nil, err
	}

	return &domain.Page{
		Title:   readTitle(doc),
		Element: element,
		Names:   readNameLists(doc),
		Votes:   readVotes(doc),
	}, nil
}

// readElement reads both attributes off the first aroma element.
func readElement(doc *goquery.Document) (domain.SourceElement, error) {
	sel := doc.Find(ElementSelector).First()
	if sel.Length() == 0 {
		sel = doc.Find(FallbackSelector).First()
	}
	if sel.Length() == 0 {
		return domain.SourceElement{}, fmt.Errorf("element %s: %w", ElementSelector, domain.ErrNotFound)
	}

	flag, ok := sel.Attr(FlagAttr)
	if !ok {
		return domain.SourceElement{}, fmt.Errorf("attribute %s: %w", FlagAttr, domain.ErrNotFound)
	}
	digits, ok := sel.Attr(DigitsAttr)
	if !ok {
		return domain.SourceElement{}, fmt.Errorf("attribute %s: %w", DigitsAttr, domain.ErrNotFound)
	}

	return domain.SourceElement{
		Flag:   strings.TrimSpace(flag),
		Digits: strings.TrimSpace(digits),
	}, nil
}

// readVotes reads "(N)" at the end of the first tasting paragraph.
func readVotes(doc *goquery.Document) int {
	text := strings.TrimSpace(doc.Find(votesSelector).First().Text())
	m := votesPattern.FindStringSubmatch(text)
	if m == nil {
		return domain.VotesUnknown
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return domain.VotesUnknown
	}
	return n
}

func readTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("h1.h-alt").First().Text()); title != "" {
		return title
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// readNameLists finds the inline script declaring NameArrObj.
func readNameLists(doc *goquery.Document) domain.NameLists {
	var names domain.NameLists
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src := s.Text()
		if !strings.Contains(src, nameTableVar) {
			return true
		}
		names = ParseNameTable(src)
		return false
	})
	return names
}

// ParseNameTable reads both category arrays from a NameArrObj declaration.
// Keys may be bare or quoted; values are quoted strings.
func ParseNameTable(src string) domain.NameLists {
	return domain.NameLists{
		Tobacco: parseNameArray(src, tobaccoNameKey),
		General: parseNameArray(src, generalNameKey),
	}
}

func parseNameArray(src, key string) domain.NameList {
	pattern := regexp.MustCompile(`(?:^|[^\w])["']?` + regexp.QuoteMeta(key) + `["']?\s*[:=]\s*\[([^\]]*)\]`)
	m := pattern.FindStringSubmatch(src)
	if m == nil {
		return nil
	}

	var out domain.NameList
	for _, q := range quotedPattern.FindAllStringSubmatch(m[1], -1) {
		if q[1] != "" || strings.HasPrefix(q[0], `"`) {
			out = append(out, unquote(q[1]))
		} else {
			out = append(out, strings.ReplaceAll(q[2], `\'`, `'`))
		}
	}
	return out
}

func unquote(s string) string {
	if u, err := strconv.Unquote(`"` + s + `"`); err == nil {
		return u
	}
	return s
}
