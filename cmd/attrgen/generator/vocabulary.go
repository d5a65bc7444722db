package generator

// vocabulary is the single source of truth for the recognized SVG
// attribute set. Every generated surface (the Go enum in pkg/attribute
// and the JSON manifest in gen/attributes) is derived from this list.
// Order is load-bearing: the position of a name fixes the numeric value
// of its identifier on every surface. Append new attributes at the
// position the SVG spec ordering dictates and regenerate all surfaces
// together.
var vocabulary = []string{
	"alternate",
	"amplitude",
	"azimuth",
	"baseFrequency",
	"baseline-shift",
	"bias",
	"class",
	"clip-path",
	"clip-rule",
	"clipPathUnits",
	"color",
	"comp-op",
	"cx",
	"cy",
	"d",
	"diffuseConstant",
	"direction",
	"display",
	"divisor",
	"dx",
	"dy",
	"edgeMode",
	"elevation",
	"enable-background",
	"encoding",
	"exponent",
	"fill",
	"fill-opacity",
	"fill-rule",
	"filter",
	"filterUnits",
	"flood-color",
	"flood-opacity",
	"font-family",
	"font-size",
	"font-stretch",
	"font-style",
	"font-variant",
	"font-weight",
	"fx",
	"fy",
	"gradientTransform",
	"gradientUnits",
	"height",
	"href",
	"id",
	"in",
	"in2",
	"intercept",
	"k1",
	"k2",
	"k3",
	"k4",
	"kernelMatrix",
	"kernelUnitLength",
	"letter-spacing",
	"lighting-color",
	"limitingConeAngle",
	"marker",
	"marker-end",
	"marker-mid",
	"marker-start",
	"markerHeight",
	"markerUnits",
	"markerWidth",
	"mask",
	"maskContentUnits",
	"maskUnits",
	"mode",
	"numOctaves",
	"offset",
	"opacity",
	"operator",
	"order",
	"orient",
	"overflow",
	"parse",
	"path",
	"patternContentUnits",
	"patternTransform",
	"patternUnits",
	"points",
	"pointsAtX",
	"pointsAtY",
	"pointsAtZ",
	"preserveAlpha",
	"preserveAspectRatio",
	"primitiveUnits",
	"r",
	"radius",
	"refX",
	"refY",
	"requiredExtensions",
	"requiredFeatures",
	"result",
	"rx",
	"ry",
	"scale",
	"seed",
	"shape-rendering",
	"slope",
	"specularConstant",
	"specularExponent",
	"spreadMethod",
	"stdDeviation",
	"stitchTiles",
	"stop-color",
	"stop-opacity",
	"stroke",
	"stroke-dasharray",
	"stroke-dashoffset",
	"stroke-linecap",
	"stroke-linejoin",
	"stroke-miterlimit",
	"stroke-opacity",
	"stroke-width",
	"style",
	"surfaceScale",
	"systemLanguage",
	"tableValues",
	"targetX",
	"targetY",
	"text-anchor",
	"text-decoration",
	"text-rendering",
	"transform",
	"type",
	"unicode-bidi",
	"values",
	"verts",
	"viewBox",
	"visibility",
	"width",
	"writing-mode",
	"x",
	"x1",
	"y1",
	"x2",
	"y2",
	"xChannelSelector",
	"xlink:href",
	"xml:lang",
	"xml:space",
	"y",
	"yChannelSelector",
	"z",
}
