package flattenast

// Importing this package for side effects registers every bundled
// language adapter into registry.DefaultRegistry and providers/catalog.
// cmd/flattenast and cmd/flattenast-store both import the root package,
// so neither needs its own blank-import block.
import (
	_ "github.com/parsekit/flattenast/internal/lang/bash"
	_ "github.com/parsekit/flattenast/internal/lang/c"
	_ "github.com/parsekit/flattenast/internal/lang/cpp"
	_ "github.com/parsekit/flattenast/internal/lang/csharp"
	_ "github.com/parsekit/flattenast/internal/lang/css"
	_ "github.com/parsekit/flattenast/internal/lang/cue"
	_ "github.com/parsekit/flattenast/internal/lang/dockerfile"
	_ "github.com/parsekit/flattenast/internal/lang/elixir"
	_ "github.com/parsekit/flattenast/internal/lang/elm"
	_ "github.com/parsekit/flattenast/internal/lang/golang"
	_ "github.com/parsekit/flattenast/internal/lang/groovy"
	_ "github.com/parsekit/flattenast/internal/lang/hcl"
	_ "github.com/parsekit/flattenast/internal/lang/html"
	_ "github.com/parsekit/flattenast/internal/lang/java"
	_ "github.com/parsekit/flattenast/internal/lang/javascript"
	_ "github.com/parsekit/flattenast/internal/lang/kotlin"
	_ "github.com/parsekit/flattenast/internal/lang/lua"
	_ "github.com/parsekit/flattenast/internal/lang/ocaml"
	_ "github.com/parsekit/flattenast/internal/lang/php"
	_ "github.com/parsekit/flattenast/internal/lang/protobuf"
	_ "github.com/parsekit/flattenast/internal/lang/python"
	_ "github.com/parsekit/flattenast/internal/lang/ruby"
	_ "github.com/parsekit/flattenast/internal/lang/rust"
	_ "github.com/parsekit/flattenast/internal/lang/scala"
	_ "github.com/parsekit/flattenast/internal/lang/sql"
	_ "github.com/parsekit/flattenast/internal/lang/svelte"
	_ "github.com/parsekit/flattenast/internal/lang/swift"
	_ "github.com/parsekit/flattenast/internal/lang/toml"
	_ "github.com/parsekit/flattenast/internal/lang/tsx"
	_ "github.com/parsekit/flattenast/internal/lang/typescript"
	_ "github.com/parsekit/flattenast/internal/lang/yaml"
)
