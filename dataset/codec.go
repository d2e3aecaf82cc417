package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	maxLineBytes = 1 << 20

	// maxPrealloc caps the capacity reserved from an unverified count header.
	maxPrealloc = 1 << 16
)

// Decode reads a vector in the given format.
func Decode(r io.Reader, format Format) ([]float64, error) {
	switch format {
	case FormatRaw:
		return decodeRaw(r)
	case FormatCSV:
		return decodeCSV(r)
	default:
		return nil, fmt.Errorf("%w: %v", ErrFormat, format)
	}
}

// Encode writes v in the given format. Values use the shortest
// representation that parses back to the same float64.
func Encode(w io.Writer, format Format, v []float64) error {
	switch format {
	case FormatRaw:
		return encodeRaw(w, v)
	case FormatCSV:
		return encodeCSV(w, v)
	default:
		return fmt.Errorf("%w: %v", ErrFormat, format)
	}
}

func decodeRaw(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		out    []float64
		count  = -1
		lineNo int
	)

	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		for _, f := range fields {
			if count < 0 {
				n, err := strconv.Atoi(f)
				if err != nil || n < 0 {
					return nil, fmt.Errorf("dataset: line %d: invalid count %q", lineNo, f)
				}
				count = n
				out = make([]float64, 0, min(n, maxPrealloc))
				continue
			}

			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: line %d: %w", lineNo, err)
			}
			if len(out) == count {
				return nil, fmt.Errorf("%w: header says %d, found more values at line %d",
					ErrCountMismatch, count, lineNo)
			}
			out = append(out, x)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}

	if count < 0 {
		return nil, errors.New("dataset: missing count header")
	}
	if len(out) != count {
		return nil, fmt.Errorf("%w: header says %d, found %d values", ErrCountMismatch, count, len(out))
	}

	return out, nil
}

func encodeRaw(w io.Writer, v []float64) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)

	buf = strconv.AppendInt(buf[:0], int64(len(v)), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}

	for _, x := range v {
		buf = strconv.AppendFloat(buf[:0], x, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func decodeCSV(r io.Reader) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	out := []float64{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}

		line, _ := cr.FieldPos(0)
		for _, f := range record {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: line %d: %w", line, err)
			}
			out = append(out, x)
		}
	}

	return out, nil
}

func encodeCSV(w io.Writer, v []float64) error {
	record := make([]string, len(v))
	for i, x := range v {
		record[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}

	cw := csv.NewWriter(w)
	if len(record) > 0 {
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
