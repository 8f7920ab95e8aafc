// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lookup

import (
	"fmt"
	"strings"
)

// queryTemplate selects the English comment and the thumbnail of the
// resource whose English label equals the term. Both are optional.
const queryTemplate = `
SELECT ?description ?image WHERE {
  ?s rdfs:label "%s"@en.
  OPTIONAL {
    ?s <http://www.w3.org/2000/01/rdf-schema#comment> ?description.
    FILTER (lang(?description) = 'en')
  }
  OPTIONAL {
    ?s <http://dbpedia.org/ontology/thumbnail> ?image.
  }
}
`

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// BuildQuery returns the SPARQL text for term, escaped as a string literal.
func BuildQuery(term string) string {
	return fmt.Sprintf(queryTemplate, literalEscaper.Replace(term))
}
