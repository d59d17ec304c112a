// Package validation implementa un motor de reglas declarativas sobre
// requests planos (clave → valor string). Las reglas son specs inmutables;
// el intérprete no guarda estado entre corridas.
package validation

// Request es la vista que el motor tiene del input crudo.
// Distinguir "ausente" de "vacío" es parte del contrato.
type Request interface {
	Parameter(name string) string
	HasParameter(name string) bool
}

// Check evalúa el valor crudo de un atributo. Si falla, devuelve el mensaje
// ya formateado con el label humano del atributo.
type Check func(label, value string, present bool) (msg string, ok bool)

// Rule agrupa los checks de un atributo, con precondición opcional sobre el
// request completo y sub-reglas que solo corren si la regla no fue violada.
type Rule struct {
	Attribute    string
	Checks       []Check
	Precondition func(Request) bool
	Subrules     []Rule
}

func NewRule(attribute string, checks ...Check) Rule {
	return Rule{Attribute: attribute, Checks: checks}
}

// When devuelve una copia de la regla con precondición.
// Si la precondición da false, la regla y todo su subárbol se saltean.
func (r Rule) When(cond func(Request) bool) Rule {
	r.Precondition = cond
	return r
}

// Sub devuelve una copia de la regla con una sub-regla agregada.
func (r Rule) Sub(sub Rule) Rule {
	subs := make([]Rule, 0, len(r.Subrules)+1)
	subs = append(subs, r.Subrules...)
	subs = append(subs, sub)
	r.Subrules = subs
	return r
}

type Result struct {
	Errors []string
}

func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Validator mantiene labels (solo para mensajes) y las reglas top-level
// en orden de declaración. El orden afecta el orden de los mensajes, nada más:
// las reglas top-level son independientes entre sí.
type Validator struct {
	labels map[string]string
	rules  []Rule
}

func New(labels map[string]string, rules ...Rule) *Validator {
	return &Validator{labels: labels, rules: rules}
}

// Validate corre todas las reglas y devuelve un Result fresco.
// Nunca devuelve error: los problemas del input se acumulan como mensajes.
func (v *Validator) Validate(req Request) Result {
	var res Result
	for _, rule := range v.rules {
		v.eval(req, rule, &res)
	}
	return res
}

func (v *Validator) eval(req Request, r Rule, res *Result) {
	if r.Precondition != nil && !r.Precondition(req) {
		return
	}

	label, ok := v.labels[r.Attribute]
	if !ok {
		label = r.Attribute
	}

	value := req.Parameter(r.Attribute)
	present := req.HasParameter(r.Attribute)

	violated := false
	for _, check := range r.Checks {
		if msg, ok := check(label, value, present); !ok {
			res.Errors = append(res.Errors, msg)
			violated = true
		}
	}

	if violated {
		return
	}
	for _, sub := range r.Subrules {
		v.eval(req, sub, res)
	}
}
