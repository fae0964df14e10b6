package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	errs "github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/layout"
)

// ParseScript reads intents from r, one per line. Errors carry the line
// number and have code INVALID_SCRIPT.
func ParseScript(r io.Reader) ([]layout.Intent, error) {
	var intents []layout.Intent
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		in, err := ParseLine(line)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidScript, err, "line %d", n)
		}
		intents = append(intents, in)
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidScript, err, "read script")
	}
	return intents, nil
}

// ParseLine parses a single script statement such as "place w1 0".
func ParseLine(line string) (layout.Intent, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "want <verb> <widget> [arg], got %q", line)
	}
	verb, id, args := strings.ToLower(fields[0]), fields[1], fields[2:]
	if err := errs.ValidateWidgetID(id); err != nil {
		return nil, err
	}

	switch layout.IntentKind(verb) {
	case layout.KindPlace:
		if err := maxArgs(verb, args, 1); err != nil {
			return nil, err
		}
		if len(args) == 0 {
			return layout.PlaceIntent{WidgetID: id}, nil
		}
		pos, err := parseInt("position", args[0])
		if err != nil {
			return nil, err
		}
		return layout.PlaceIntent{WidgetID: id, Position: layout.At(pos)}, nil
	case layout.KindReorder:
		if err := exactArgs(verb, args, 1); err != nil {
			return nil, err
		}
		return layout.ReorderIntent{WidgetID: id, TargetID: args[0]}, nil
	case layout.KindRemove:
		if err := exactArgs(verb, args, 0); err != nil {
			return nil, err
		}
		return layout.RemoveIntent{WidgetID: id}, nil
	case layout.KindResize:
		if err := exactArgs(verb, args, 1); err != nil {
			return nil, err
		}
		span, err := parseInt("span", args[0])
		if err != nil {
			return nil, err
		}
		return layout.ResizeIntent{WidgetID: id, Span: span}, nil
	case layout.KindNudge:
		if err := exactArgs(verb, args, 1); err != nil {
			return nil, err
		}
		dir, err := layout.ParseDirection(args[0])
		if err != nil {
			return nil, err
		}
		return layout.NudgeIntent{WidgetID: id, Direction: dir}, nil
	default:
		return nil, errs.New(errs.ErrCodeInvalidInput, "unknown verb %q", fields[0])
	}
}

// FormatIntent renders in as a script line accepted by [ParseLine].
func FormatIntent(in layout.Intent) string {
	switch v := in.(type) {
	case layout.PlaceIntent:
		if v.Position != nil {
			return fmt.Sprintf("place %s %d", v.WidgetID, *v.Position)
		}
		return "place " + v.WidgetID
	case layout.ReorderIntent:
		return fmt.Sprintf("reorder %s %s", v.WidgetID, v.TargetID)
	case layout.RemoveIntent:
		return "remove " + v.WidgetID
	case layout.ResizeIntent:
		return fmt.Sprintf("resize %s %d", v.WidgetID, v.Span)
	case layout.NudgeIntent:
		return fmt.Sprintf("nudge %s %s", v.WidgetID, v.Direction)
	default:
		return fmt.Sprintf("# unsupported %T", in)
	}
}

func parseInt(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.New(errs.ErrCodeInvalidInput, "%s must be an integer, got %q", name, s)
	}
	return n, nil
}

func exactArgs(verb string, args []string, n int) error {
	if len(args) != n {
		return errs.New(errs.ErrCodeInvalidInput, "%s takes %d argument(s) after the widget, got %d", verb, n, len(args))
	}
	return nil
}

func maxArgs(verb string, args []string, n int) error {
	if len(args) > n {
		return errs.New(errs.ErrCodeInvalidInput, "%s takes at most %d argument(s) after the widget, got %d", verb, n, len(args))
	}
	return nil
}
