// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package list

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// TestDataDriven drives named lists through the commands below. Every command
// prints the state of all lists afterwards, preceded by any returned value or
// recovered panic.
//
//	new name=<l> [vals=(<int>,...)]
//	push-back|push-front name=<l> v=<int>
//	pop-back|pop-front|front|back name=<l>
//	insert name=<l> pos=<int> v=<int>
//	erase name=<l> pos=<int>
//	erase-range name=<l> from=<int> to=<int>
//	merge|splice|copy|move|swap name=<l> other=<l> [pos=<int>]
//	sort|reverse|clear name=<l>
//	resize name=<l> n=<int> [v=<int>]
//	assign name=<l> n=<int> v=<int>
//	print
//
// pos=-1 names the end position.
func TestDataDriven(t *testing.T) {
	lists := map[string]*List[int]{}

	get := func(t *testing.T, d *datadriven.TestData, key string) *List[int] {
		var name string
		d.ScanArgs(t, key, &name)
		l, ok := lists[name]
		require.True(t, ok, "unknown list %q", name)
		return l
	}
	at := func(t *testing.T, d *datadriven.TestData, l *List[int], key string) Iterator[int] {
		var pos int
		d.ScanArgs(t, key, &pos)
		if pos < 0 {
			return l.End()
		}
		return l.Begin().Advance(pos)
	}
	render := func(t *testing.T, out string) string {
		var buf strings.Builder
		buf.WriteString(out)
		names := make([]string, 0, len(lists))
		for name := range lists {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			l := lists[name]
			require.NoError(t, l.validate())
			fmt.Fprintf(&buf, "%s: %v len=%d\n", name, l.Values(), l.Len())
		}
		return buf.String()
	}

	datadriven.RunTest(t, "testdata/list", func(t *testing.T, d *datadriven.TestData) string {
		var out string
		if err := catchPanic(func() {
			out = runCommand(t, d, lists, get, at)
		}); err != nil {
			out = fmt.Sprintf("panic: %v\n", err)
		}
		return render(t, out)
	})
}

func runCommand(
	t *testing.T,
	d *datadriven.TestData,
	lists map[string]*List[int],
	get func(*testing.T, *datadriven.TestData, string) *List[int],
	at func(*testing.T, *datadriven.TestData, *List[int], string) Iterator[int],
) string {
	scanInt := func(key string) int {
		var v int
		d.ScanArgs(t, key, &v)
		return v
	}
	switch d.Cmd {
	case "new":
		var name string
		d.ScanArgs(t, "name", &name)
		lists[name] = Of(intVals(t, d, "vals")...)

	case "push-back":
		get(t, d, "name").PushBack(scanInt("v"))

	case "push-front":
		get(t, d, "name").PushFront(scanInt("v"))

	case "pop-back":
		return fmt.Sprintf("popped %d\n", get(t, d, "name").PopBack())

	case "pop-front":
		return fmt.Sprintf("popped %d\n", get(t, d, "name").PopFront())

	case "front":
		return fmt.Sprintf("front %d\n", get(t, d, "name").Front())

	case "back":
		return fmt.Sprintf("back %d\n", get(t, d, "name").Back())

	case "insert":
		l := get(t, d, "name")
		l.Insert(at(t, d, l, "pos"), scanInt("v"))

	case "erase":
		l := get(t, d, "name")
		next := l.Erase(at(t, d, l, "pos"))
		if !next.Valid() {
			return "next: end\n"
		}
		return fmt.Sprintf("next: %d\n", next.Value())

	case "erase-range":
		l := get(t, d, "name")
		l.EraseRange(at(t, d, l, "from"), at(t, d, l, "to"))

	case "merge":
		Merge(get(t, d, "name"), get(t, d, "other"))

	case "splice":
		l := get(t, d, "name")
		pos := l.End()
		if d.HasArg("pos") {
			pos = at(t, d, l, "pos")
		}
		l.Splice(pos, get(t, d, "other"))

	case "copy":
		get(t, d, "name").CopyFrom(get(t, d, "other"))

	case "move":
		get(t, d, "name").MoveFrom(get(t, d, "other"))

	case "swap":
		get(t, d, "name").Swap(get(t, d, "other"))

	case "sort":
		Sort(get(t, d, "name"))

	case "reverse":
		get(t, d, "name").Reverse()

	case "clear":
		get(t, d, "name").Clear()

	case "resize":
		l := get(t, d, "name")
		var v int
		if d.HasArg("v") {
			v = scanInt("v")
		}
		l.ResizeWith(scanInt("n"), v)

	case "assign":
		get(t, d, "name").Assign(scanInt("n"), scanInt("v"))

	case "print":

	default:
		t.Fatalf("unknown command %q", d.Cmd)
	}
	return ""
}

// intVals returns the integer values of the key argument, or nil if absent.
func intVals(t *testing.T, d *datadriven.TestData, key string) []int {
	for _, arg := range d.CmdArgs {
		if arg.Key != key {
			continue
		}
		var vals []int
		for _, s := range arg.Vals {
			if s = strings.TrimSpace(s); s == "" {
				continue
			}
			v, err := strconv.Atoi(s)
			require.NoError(t, err)
			vals = append(vals, v)
		}
		return vals
	}
	return nil
}

func catchPanic(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			var ok bool
			if err, ok = r.(error); !ok {
				err = errors.Newf("%v", r)
			}
		}
	}()
	f()
	return nil
}
