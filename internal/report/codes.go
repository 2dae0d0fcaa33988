package report

// Code is a diagnostic code borrowed from the source language's standard
// code set, kept numeric for editor/tooling compatibility (spec.md §6).
type Code int

// Representative subset named in spec.md §6. Messages are formatted at
// emission from the arguments passed to Store.Error/Warning/Info,
// mirroring the %s placeholders TypeScript's own diagnostic messages use.
const (
	CodeIdentifierExpected             Code = 1003
	CodeTokenExpected                  Code = 1005 // "%s expected"
	CodeInitializerNotAllowedInAmbient Code = 1039
	CodeImplementationNotAllowedInAmbient Code = 1183
	CodeFunctionImplementationMissing  Code = 1252
	CodeReturnOutsideFunction          Code = 1108
	CodeModifierCannotBeUsedHere       Code = 1042
	CodeExpressionExpected            Code = 1109
	CodeTypeParameterListCannotBeEmpty Code = 1098
	CodeIncrementOperandMustBeVariable Code = 2357
	CodeDecoratorsNotValidHere         Code = 1206
	CodeCaseOrDefaultExpected          Code = 1130
	CodeLineBreakNotPermittedHere      Code = 1142
	CodeTypeExpected                   Code = 1110
	CodeStringLiteralExpected          Code = 1141

	// Codes this implementation needs beyond the representative subset,
	// numbered in the same family as their closest upstream analogue.
	CodeTypeAliasUnsupported Code = 1211
	CodeCommaExpected        Code = 1005
	CodeUnterminatedBlock    Code = 1160
	CodeCatchOrFinallyExpected Code = 1472
	CodeTrailingCommaNotAllowed Code = 1126
)
