// Package codec reads and writes graph snapshots in a line-oriented text
// format:
//
//	FRIENDGRAPH 1
//	NEXT <high-water id>
//	USERS <n>
//	<id>|<name>|<tag>,<tag>,...
//	EDGES <m>
//	<a> <b>
//
// Backslash escapes protect '\', '|', ',' and line breaks inside names and
// tags. The header lines, the edge count and the tag field are optional on
// read.
package codec

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dtroode/friendgraph/internal/model"
)

const (
	magic   = "FRIENDGRAPH"
	version = 1
)

// Encode writes s to w.
func Encode(w io.Writer, s model.Snapshot) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %d\n", magic, version)
	fmt.Fprintf(bw, "NEXT %d\n", s.HighWater)
	fmt.Fprintf(bw, "USERS %d\n", len(s.Users))
	for _, u := range s.Users {
		tags := make([]string, len(u.Interests))
		for i, t := range u.Interests {
			tags[i] = escape(t)
		}
		fmt.Fprintf(bw, "%d|%s|%s\n", u.ID, escape(u.Name), strings.Join(tags, ","))
	}
	fmt.Fprintf(bw, "EDGES %d\n", len(s.Edges))
	for _, e := range s.Edges {
		fmt.Fprintf(bw, "%d %d\n", e.A, e.B)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w: %w", model.ErrIO, err)
	}
	return nil
}

// Marshal encodes s into a byte slice.
func Marshal(s model.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses a snapshot from r. Any syntax error is reported as
// model.ErrIO together with the offending line number.
func Decode(r io.Reader) (model.Snapshot, error) {
	d := &decoder{sc: bufio.NewScanner(r)}
	d.sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	s, err := d.decode()
	if err != nil {
		return model.Snapshot{}, err
	}
	return s, nil
}

// Unmarshal decodes a snapshot from data.
func Unmarshal(data []byte) (model.Snapshot, error) {
	return Decode(bytes.NewReader(data))
}

type decoder struct {
	sc   *bufio.Scanner
	line int
}

func (d *decoder) next() (string, bool) {
	if !d.sc.Scan() {
		return "", false
	}
	d.line++
	return strings.TrimSuffix(d.sc.Text(), "\r"), true
}

func (d *decoder) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", d.line, fmt.Sprintf(format, args...), model.ErrIO)
}

func (d *decoder) decode() (model.Snapshot, error) {
	var s model.Snapshot

	l, ok := d.next()
	if !ok {
		return s, d.readErr("missing USERS header")
	}
	if strings.HasPrefix(l, magic+" ") {
		v, err := strconv.Atoi(strings.TrimPrefix(l, magic+" "))
		if err != nil || v != version {
			return s, d.errorf("unsupported version %q", l)
		}
		if l, ok = d.next(); !ok {
			return s, d.readErr("missing USERS header")
		}
	}
	if strings.HasPrefix(l, "NEXT ") {
		n, err := strconv.Atoi(strings.TrimPrefix(l, "NEXT "))
		if err != nil || n < 0 {
			return s, d.errorf("bad NEXT line %q", l)
		}
		s.HighWater = n
		if l, ok = d.next(); !ok {
			return s, d.readErr("missing USERS header")
		}
	}

	count, err := d.header(l, "USERS", true)
	if err != nil {
		return s, err
	}
	seen := make(map[int]struct{}, count)
	for i := 0; i < count; i++ {
		l, ok := d.next()
		if !ok {
			return s, d.readErr(fmt.Sprintf("expected %d users, got %d", count, i))
		}
		u, err := d.user(l)
		if err != nil {
			return s, err
		}
		if _, dup := seen[u.ID]; dup {
			return s, d.errorf("duplicate user %d", u.ID)
		}
		seen[u.ID] = struct{}{}
		s.Users = append(s.Users, u)
	}

	l, ok = d.next()
	if !ok {
		return s, d.readErr("missing EDGES header")
	}
	edges, err := d.header(l, "EDGES", false)
	if err != nil {
		return s, err
	}
	for {
		l, ok := d.next()
		if !ok {
			break
		}
		if strings.TrimSpace(l) == "" {
			continue
		}
		e, err := d.edge(l, seen)
		if err != nil {
			return s, err
		}
		s.Edges = append(s.Edges, e)
	}
	if err := d.sc.Err(); err != nil {
		return s, fmt.Errorf("failed to read snapshot: %w: %w", model.ErrIO, err)
	}
	if edges >= 0 && edges != len(s.Edges) {
		return s, d.errorf("expected %d edges, got %d", edges, len(s.Edges))
	}
	return s, nil
}

func (d *decoder) readErr(msg string) error {
	if err := d.sc.Err(); err != nil {
		return fmt.Errorf("failed to read snapshot: %w: %w", model.ErrIO, err)
	}
	return d.errorf("%s", msg)
}

// header parses "<name> <count>"; the count is optional unless required,
// in which case -1 is never returned.
func (d *decoder) header(l, name string, required bool) (int, error) {
	fields := strings.Fields(l)
	if len(fields) == 0 || fields[0] != name {
		return 0, d.errorf("expected %s header, got %q", name, l)
	}
	if len(fields) == 1 && !required {
		return -1, nil
	}
	if len(fields) != 2 {
		return 0, d.errorf("bad %s header %q", name, l)
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 0 {
		return 0, d.errorf("bad %s count %q", name, fields[1])
	}
	return n, nil
}

func (d *decoder) user(l string) (model.SnapshotUser, error) {
	fields := split(l, '|')
	if len(fields) < 2 || len(fields) > 3 {
		return model.SnapshotUser{}, d.errorf("bad user line %q", l)
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil || id <= 0 {
		return model.SnapshotUser{}, d.errorf("bad user id %q", fields[0])
	}
	u := model.SnapshotUser{ID: id, Name: unescape(fields[1])}
	if strings.TrimSpace(u.Name) == "" {
		return model.SnapshotUser{}, d.errorf("empty name for user %d", id)
	}
	if len(fields) == 3 && fields[2] != "" {
		for _, t := range split(fields[2], ',') {
			u.Interests = append(u.Interests, unescape(t))
		}
	}
	return u, nil
}

func (d *decoder) edge(l string, users map[int]struct{}) (model.Edge, error) {
	fields := strings.Fields(l)
	if len(fields) != 2 {
		return model.Edge{}, d.errorf("bad edge line %q", l)
	}
	a, errA := strconv.Atoi(fields[0])
	b, errB := strconv.Atoi(fields[1])
	if errA != nil || errB != nil {
		return model.Edge{}, d.errorf("bad edge line %q", l)
	}
	if a == b {
		return model.Edge{}, d.errorf("self loop on user %d", a)
	}
	for _, id := range []int{a, b} {
		if _, ok := users[id]; !ok {
			return model.Edge{}, d.errorf("edge references unknown user %d", id)
		}
	}
	if a > b {
		a, b = b, a
	}
	return model.Edge{A: a, B: b}, nil
}

func escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\', '|', ',':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	esc := false
	for _, r := range s {
		switch {
		case esc:
			switch r {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteRune(r)
			}
			esc = false
		case r == '\\':
			esc = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// split cuts s on unescaped sep, leaving escapes in place for unescape.
func split(s string, sep rune) []string {
	var out []string
	var cur strings.Builder
	esc := false
	for _, r := range s {
		switch {
		case esc:
			cur.WriteByte('\\')
			cur.WriteRune(r)
			esc = false
		case r == '\\':
			esc = true
		case r == sep:
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	if esc {
		cur.WriteByte('\\')
	}
	return append(out, cur.String())
}
