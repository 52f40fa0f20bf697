package classifier

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Payload is the loosely typed body of a scoring request. Field names
// follow the wire contract (Portuguese keys). Numeric fields tolerate JSON
// numbers, numeric strings and null; the comorbidity list may arrive as a
// native array or as an array serialized into a JSON string.
type Payload struct {
	Nome         string          `json:"nome"`
	Data         string          `json:"data"`
	Idade        FlexNumber      `json:"idade"`
	Sexo         string          `json:"sexo"`
	Altura       FlexNumber      `json:"altura"`
	Peso         FlexNumber      `json:"peso"`
	Comorbidades json.RawMessage `json:"comorbidades"`
}

// FlexNumber coerces a JSON value to a float64. Numbers and numeric
// strings parse normally; null, absent and unparseable values coerce to
// zero without raising an error, which is the intake contract.
type FlexNumber struct {
	value float64
	valid bool
}

func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	n.value = v
	n.valid = true
	return nil
}

// Float64 returns the coerced value, zero when the field was absent or
// unparseable.
func (n FlexNumber) Float64() float64 { return n.value }

// Valid reports whether the field carried a usable number.
func (n FlexNumber) Valid() bool { return n.valid }

// Metadata is the derived consultation header rendered on the report and
// persisted alongside the score.
type Metadata struct {
	Nome         string
	DataConsulta string
	Altura       float64
	Peso         float64
	IMC          *float64
}

// Encoded is the full outcome of encoding one payload. MatchedKeys and
// MatchedLabels keep the payload's entry order; DroppedKeys and
// DefaultedFields record the silently recovered input problems so callers
// can log them (they are never surfaced on the wire).
type Encoded struct {
	Vector          []float64
	Meta            Metadata
	SexCode         int
	MatchedKeys     []string
	MatchedLabels   []string
	DroppedKeys     []string
	DefaultedFields []string
}

// femaleTokens is the closed set of case-insensitive sex values that map
// to code 2. Everything else, including an absent value, maps to 1.
var femaleTokens = map[string]bool{"f": true, "feminino": true, "female": true}

// EncodeSex maps a free-text sex value to the model's two-valued encoding:
// 1 for male (the default), 2 for female.
func EncodeSex(sexo string) int {
	if femaleTokens[strings.ToLower(strings.TrimSpace(sexo))] {
		return 2
	}
	return 1
}

// BMI returns weight divided by height squared rounded to one decimal, or
// nil when height is not positive.
func BMI(pesoKg, alturaM float64) *float64 {
	if alturaM <= 0 {
		return nil
	}
	v := math.Round(pesoKg/(alturaM*alturaM)*10) / 10
	return &v
}

// decodeComorbidities accepts either a JSON array or a JSON string holding
// a serialized array. Parse failures and non-string entries are dropped
// silently; the result is never nil.
func decodeComorbidities(raw json.RawMessage) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}

	var entries []interface{}
	if err := json.Unmarshal(raw, &entries); err != nil {
		// The list may be double-encoded as a string value.
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return out
		}
		if err := json.Unmarshal([]byte(s), &entries); err != nil {
			return out
		}
	}

	for _, e := range entries {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Encode turns one intake payload into the fixed-order feature vector plus
// consultation metadata. The vector always has exactly len(FeatureNames)
// slots in catalog order regardless of payload content: slot 0 is age,
// slot 1 the sex code, and every other slot is 1 when the matching catalog
// key appears in the comorbidity list. Deterministic, no side effects.
func Encode(p Payload) Encoded {
	enc := Encoded{
		MatchedKeys:     []string{},
		MatchedLabels:   []string{},
		DroppedKeys:     []string{},
		DefaultedFields: []string{},
	}

	if !p.Idade.Valid() {
		enc.DefaultedFields = append(enc.DefaultedFields, "idade")
	}
	if !p.Altura.Valid() {
		enc.DefaultedFields = append(enc.DefaultedFields, "altura")
	}
	if !p.Peso.Valid() {
		enc.DefaultedFields = append(enc.DefaultedFields, "peso")
	}

	enc.SexCode = EncodeSex(p.Sexo)

	selected := make(map[string]bool)
	for _, key := range decodeComorbidities(p.Comorbidades) {
		if !InCatalog(key) {
			enc.DroppedKeys = append(enc.DroppedKeys, key)
			continue
		}
		enc.MatchedKeys = append(enc.MatchedKeys, key)
		enc.MatchedLabels = append(enc.MatchedLabels, LabelPT(key))
		selected[key] = true
	}

	vec := make([]float64, len(FeatureNames))
	vec[0] = p.Idade.Float64()
	vec[1] = float64(enc.SexCode)
	for i, name := range FeatureNames[2:] {
		if selected[name] {
			vec[i+2] = 1
		}
	}
	enc.Vector = vec

	altura := p.Altura.Float64()
	peso := p.Peso.Float64()
	enc.Meta = Metadata{
		Nome:         p.Nome,
		DataConsulta: p.Data,
		Altura:       altura,
		Peso:         peso,
		IMC:          BMI(peso, altura),
	}
	return enc
}
