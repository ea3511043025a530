// Package naturalkey normaliza la clave natural (Name) usada en los flujos
// get-or-create de cuentas. La normalización evita que "ACME", "acme " y
// "Acme" (o la misma cadena en formas Unicode distintas) generen cuentas
// duplicadas por simples diferencias de mayúsculas, espacios o encoding.
//
// OJO: la tabla accounts NO tiene índice único sobre esta clave; dos llamadas
// concurrentes todavía pueden crear duplicados (limitación aceptada).
package naturalkey

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize devuelve la forma canónica de un nombre para usarla como clave
// de búsqueda: NFC + case folding Unicode + espacios colapsados.
// El Caser se construye por llamada: x/text documenta que un Caser puede ser
// stateful y no debe compartirse entre goroutines.
func Normalize(name string) string {
	s := norm.NFC.String(name)
	s = cases.Fold().String(s)
	return strings.Join(strings.Fields(s), " ")
}
