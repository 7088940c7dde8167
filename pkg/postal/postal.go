// Package postal resuelve códigos postales colombianos a municipio y
// departamento. La tabla de referencia se carga una sola vez, de forma
// diferida, bajo un guard de inicialización seguro para concurrencia:
// ningún estado mutable a nivel de módulo queda expuesto.
package postal

import "sync"

// Place es el resultado de una consulta postal.
type Place struct {
	City       string `json:"city"`
	Department string `json:"department"`
}

// Catalogue es el servicio de consulta. Construirlo es barato; la tabla se
// materializa en el primer Lookup y nunca se recarga (contrato load-once).
type Catalogue struct {
	once  sync.Once
	table map[string]Place
}

// NewCatalogue construye un catálogo sin cargar la tabla todavía.
func NewCatalogue() *Catalogue {
	return &Catalogue{}
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalogue
)

// Default devuelve el catálogo compartido del proceso.
func Default() *Catalogue {
	defaultOnce.Do(func() {
		defaultCat = NewCatalogue()
	})
	return defaultCat
}

func (c *Catalogue) load() {
	c.once.Do(func() {
		c.table = make(map[string]Place, len(rawTable))
		for code, p := range rawTable {
			c.table[code] = p
		}
	})
}

// Lookup busca un código postal. El segundo valor indica si existe.
func (c *Catalogue) Lookup(code string) (Place, bool) {
	c.load()
	p, ok := c.table[code]
	return p, ok
}

// Size devuelve el número de códigos cargados (fuerza la carga).
func (c *Catalogue) Size() int {
	c.load()
	return len(c.table)
}
