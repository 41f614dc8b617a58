package tablegen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"
	"strings"
	"text/template"
)

const perLine = 16

var sourceTemplate = template.Must(template.New("tables").Parse(`// Code generated by pokerrank gen-tables. DO NOT EDIT.

package tables

// Primes maps a rank ordinal, deuce through ace, to its prime.
var Primes = [13]uint32{
{{ .Primes }}}

// Flushes holds the rank of every suited five-distinct-rank pattern,
// indexed by the OR of the cards' rank bits.
var Flushes = [RankMaskSize]uint16{
{{ .Flushes }}}

// Unique holds the rank of every offsuit straight and high-card pattern,
// indexed like Flushes. Patterns with a repeated rank are zero.
var Unique = [RankMaskSize]uint16{
{{ .Unique }}}

// HashAdjust is the displacement XORed into the perfect hash for each bucket.
var HashAdjust = [AdjustSize]uint16{
{{ .HashAdjust }}}

// HashValues holds the rank of every paired hand at its perfect-hash slot.
var HashValues = [HashSize]uint16{
{{ .HashValues }}}
`))

// Render writes t as gofmt-formatted Go source for package tables.
func Render(w io.Writer, t *Tables) error {
	primes := make([]uint16, len(t.Primes))
	for i, p := range t.Primes {
		primes[i] = uint16(p)
	}

	var buf bytes.Buffer
	err := sourceTemplate.Execute(&buf, map[string]string{
		"Primes":     rows(primes),
		"Flushes":    rows(t.Flushes[:]),
		"Unique":     rows(t.Unique[:]),
		"HashAdjust": rows(t.HashAdjust[:]),
		"HashValues": rows(t.HashValues[:]),
	})
	if err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

func rows(values []uint16) string {
	var sb strings.Builder
	for i, v := range values {
		if i%perLine == 0 {
			sb.WriteByte('\t')
		}
		sb.WriteString(strconv.Itoa(int(v)))
		sb.WriteByte(',')
		if i%perLine == perLine-1 || i == len(values)-1 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
