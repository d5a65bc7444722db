// Package attributes carries the generated attribute manifest, the
// second surface derived from the attrgen vocabulary. Native glue code
// and other-language bindings consume this file; pkg/attribute's tests
// compare it against the compiled enum.
package attributes

import _ "embed"

//go:embed attributes.json
var Data []byte
