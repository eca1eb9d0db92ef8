package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parsekit/flattenast"
)

// predicates maps the CLI's bare predicate names (no "Is" prefix) to the
// library function they call, so `flattenast predicate function_call
// CALL_FUNCTION` reads the same as the underlying Is* function names.
var predicates = map[string]func(flattenast.SemanticType) bool{
	"definition": flattenast.IsDefinition,
	"function_definition": flattenast.IsFunctionDefinition,
	"class_definition": flattenast.IsClassDefinition,
	"variable_definition": flattenast.IsVariableDefinition,
	"call": flattenast.IsCall,
	"function_call": flattenast.IsFunctionCall,
	"method_call": flattenast.IsMethodCall,
	"operator": flattenast.IsOperator,
	"arithmetic": flattenast.IsArithmetic,
	"comparison": flattenast.IsComparison,
	"logical": flattenast.IsLogical,
	"assignment": flattenast.IsAssignment,
	"member_access": flattenast.IsMemberAccess,
	"control_flow": flattenast.IsControlFlow,
	"conditional": flattenast.IsConditional,
	"loop": flattenast.IsLoop,
	"jump": flattenast.IsJump,
	"error_handling": flattenast.IsErrorHandling,
	"literal": flattenast.IsLiteral,
	"string_literal": flattenast.IsStringLiteral,
	"number_literal": flattenast.IsNumberLiteral,
	"boolean_literal": flattenast.IsBooleanLiteral,
	"identifier": flattenast.IsIdentifier,
	"import": flattenast.IsImport,
	"export": flattenast.IsExport,
	"comment": flattenast.IsComment,
	"annotation": flattenast.IsAnnotation,
	"parser_construct": flattenast.IsParserConstruct,
	"syntax_error": flattenast.IsSyntaxError,
}

func init() {
	cmd := &cobra.Command{
		Use: "predicate <name> <semantic-type>",
		Short: "Evaluate an is_* predicate against a semantic-type code or name",
		Example: ` flattenast predicate function_call CALL_FUNCTION`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pred, ok := predicates[args[0]]
			if !ok {
				return fmt.Errorf("unknown predicate %q", args[0])
			}
			code, err := resolveSemanticType(args[1])
			if err != nil {
				return err
			}
			fmt.Println(pred(code))
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}

// resolveSemanticType accepts either a canonical name (e.g.
// "CALL_FUNCTION") or a numeric code (decimal or 0x-prefixed hex).
func resolveSemanticType(s string) (flattenast.SemanticType, error) {
	upper := strings.ToUpper(s)
	if code := flattenast.SemanticTypeCode(upper); upper == "UNKNOWN_SEMANTIC_TYPE" || flattenast.SemanticTypeName(code) == upper {
		return code, nil
	}
	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("unrecognized semantic type %q", s)
	}
	return flattenast.SemanticType(n), nil
}
