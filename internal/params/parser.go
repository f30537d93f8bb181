package params

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Warning records one recoverable parse problem: a value that failed domain
// coercion, or a duplicated key with a conflicting value.
type Warning struct {
	Key    string
	Value  string
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s=%q: %s", w.Key, w.Value, w.Reason)
}

// ParseResult carries the normalized set plus everything the reporter needs
// to explain what was skipped.
type ParseResult struct {
	Set      Set
	Unknown  []string
	Warnings []Warning
}

// Parse turns raw encoder-parameter text into a normalized parameter set.
// It accepts one record per line (key = value, key: value) as well as dense
// option streams separated by spaces, commas, semicolons, or the " / "
// delimiters mediainfo emits. Unparsable content is skipped, never fatal.
func Parse(raw string) ParseResult {
	p := &parser{
		set:     Set{},
		unknown: map[string]struct{}{},
	}
	for _, line := range strings.Split(raw, "\n") {
		p.parseLine(strings.TrimSpace(line))
	}
	return ParseResult{
		Set:      p.set,
		Unknown:  sortedKeys(p.unknown),
		Warnings: p.warnings,
	}
}

type parser struct {
	set      Set
	unknown  map[string]struct{}
	warnings []Warning
}

func (p *parser) parseLine(line string) {
	if line == "" {
		return
	}

	// A line whose delimited key resolves to a known parameter and whose
	// remainder coerces as a single value is one logical record; that way
	// unit suffixes like "8 frames" survive. A scalar remainder that fails
	// coercion is a bad value for that key and is dropped with a warning.
	// A remainder carrying stream delimiters is a dense option stream that
	// happens to start with a known key; it falls through to token parsing.
	if key, value, ok := splitRecord(line); ok {
		if spec, known := Lookup(key); known {
			coerced, err := coerce(spec, value)
			if err == nil {
				p.store(spec, coerced)
				return
			}
			if !strings.ContainsAny(value, "=/,;") {
				p.warnings = append(p.warnings, Warning{Key: spec.Name, Value: value, Reason: err.Error()})
				return
			}
		}
	}

	p.parseTokens(line)
}

// splitRecord splits on the earliest of '=' or ':' when the key side looks
// like a single field name.
func splitRecord(line string) (string, string, bool) {
	idx := strings.IndexAny(line, "=:")
	if idx <= 0 {
		return "", "", false
	}
	key := strings.TrimSpace(line[:idx])
	if key == "" || strings.ContainsAny(key, " \t") {
		return "", "", false
	}
	return key, strings.TrimSpace(line[idx+1:]), true
}

func (p *parser) parseTokens(line string) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		switch r {
		case ' ', '\t', ',', ';', '/':
			return true
		}
		return false
	})

	// Bare flag tokens (sao, no-sao, ...) are only meaningful inside an
	// options stream; prose lines without a single key=value pair would
	// otherwise flood the unknown-field report.
	optionStream := false
	for _, field := range fields {
		if strings.ContainsRune(field, '=') {
			optionStream = true
			break
		}
	}

	for _, field := range fields {
		if key, value, found := strings.Cut(field, "="); found {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			spec, known := Lookup(key)
			if !known {
				p.unknown[strings.ToLower(key)] = struct{}{}
				continue
			}
			p.addPair(spec, strings.TrimSpace(value))
			continue
		}
		if optionStream {
			p.parseFlag(field)
		}
	}
}

func (p *parser) parseFlag(token string) {
	name := strings.TrimSpace(token)
	if name == "" || !isOptionToken(name) {
		return
	}
	enabled := true
	lookupName := name
	if rest, found := strings.CutPrefix(strings.ToLower(name), "no-"); found {
		enabled = false
		lookupName = rest
	}
	spec, known := Lookup(lookupName)
	if !known || spec.Kind != KindBool {
		p.unknown[strings.ToLower(name)] = struct{}{}
		return
	}
	p.store(spec, Value{Name: spec.Name, Kind: KindBool, Bool: enabled})
}

func (p *parser) addPair(spec *Spec, value string) {
	coerced, err := coerce(spec, value)
	if err != nil {
		p.warnings = append(p.warnings, Warning{Key: spec.Name, Value: value, Reason: err.Error()})
		return
	}
	p.store(spec, coerced)
}

// store keeps the first occurrence of a parameter; a later conflicting
// value is reported rather than silently overwriting it.
func (p *parser) store(spec *Spec, value Value) {
	value = canonicalize(value)
	if existing, ok := p.set[spec.Name]; ok {
		if !existing.Equal(value) {
			p.warnings = append(p.warnings, Warning{
				Key:    spec.Name,
				Value:  value.String(),
				Reason: fmt.Sprintf("conflicts with earlier value %s", existing.String()),
			})
		}
		return
	}
	p.set[spec.Name] = value
}

// canonicalize folds equivalent spellings of a value onto the form the
// preset table publishes. x265 reports lookahead-slices=0 for the
// single-slice configuration the documentation writes as 1.
func canonicalize(value Value) Value {
	if value.Name == "lookahead-slices" && value.Kind == KindInt && value.Int == 0 {
		value.Int = 1
	}
	return value
}

func coerce(spec *Spec, raw string) (Value, error) {
	token := strings.TrimSpace(raw)
	if token == "" {
		return Value{}, fmt.Errorf("empty value")
	}
	switch spec.Kind {
	case KindBool:
		enabled, ok := parseBoolToken(token)
		if !ok {
			return Value{}, fmt.Errorf("not a boolean token")
		}
		return Value{Name: spec.Name, Kind: KindBool, Bool: enabled}, nil
	case KindInt:
		number, ok := parseIntToken(token)
		if !ok {
			return Value{}, fmt.Errorf("not an integer")
		}
		if number < spec.IntMin || (spec.IntMax > 0 && number > spec.IntMax) {
			return Value{}, fmt.Errorf("out of range")
		}
		return Value{Name: spec.Name, Kind: KindInt, Int: number}, nil
	case KindEnum:
		name, ok := parseEnumToken(spec, token)
		if !ok {
			return Value{}, fmt.Errorf("not in enum domain")
		}
		return Value{Name: spec.Name, Kind: KindEnum, Enum: name}, nil
	default:
		return Value{}, fmt.Errorf("unsupported kind")
	}
}

func parseBoolToken(token string) (bool, bool) {
	switch strings.ToLower(token) {
	case "1", "on", "yes", "true", "enabled":
		return true, true
	case "0", "off", "no", "false", "disabled":
		return false, true
	default:
		return false, false
	}
}

// parseIntToken accepts a plain integer with an optional unit suffix, e.g.
// "8" or "8 frames"; the suffix is stripped.
func parseIntToken(token string) (int, bool) {
	end := 0
	if end < len(token) && token[end] == '-' {
		end++
	}
	for end < len(token) && token[end] >= '0' && token[end] <= '9' {
		end++
	}
	digits := token[:end]
	if digits == "" || digits == "-" {
		return 0, false
	}
	suffix := strings.TrimSpace(token[end:])
	if suffix != "" && !isWordToken(suffix) {
		return 0, false
	}
	number, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return number, true
}

// parseEnumToken matches case-insensitively against the enum domain; a
// bare number selects by option index, the form encoders write into stream
// metadata.
func parseEnumToken(spec *Spec, token string) (string, bool) {
	lowered := strings.ToLower(token)
	for _, candidate := range spec.Enum {
		if candidate == lowered {
			return candidate, true
		}
	}
	if index, err := strconv.Atoi(lowered); err == nil {
		if index >= 0 && index < len(spec.Enum) {
			return spec.Enum[index], true
		}
	}
	return "", false
}

func isOptionToken(token string) bool {
	hasLetter := false
	for _, r := range token {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9', r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return hasLetter
}

func isWordToken(token string) bool {
	for _, r := range token {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return token != ""
}

func sortedKeys(m map[string]struct{}) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
