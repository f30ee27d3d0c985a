package domain_test

import (
	"fmt"

	"github.com/Konsultn-Engineering/sqldomain/domain"
	"github.com/Konsultn-Engineering/sqldomain/frag"
)

func ExampleCompiler_Compile() {
	c := domain.NewCompiler()
	where, err := c.Compile([]byte(`["|", ["state", "=", "draft"], ["amount", ">", 100]]`))
	if err != nil {
		panic(err)
	}

	stmt := frag.New("SELECT id FROM").
		Append(frag.New(frag.Identifier("orders"))).
		Append(frag.New("WHERE")).
		Append(where)
	stmt, err = stmt.Finalize()
	if err != nil {
		panic(err)
	}

	fmt.Println(stmt.Formatted())
	fmt.Println(frag.Args(stmt.Params()))
	// Output:
	// SELECT id FROM "orders" WHERE ("state" = $1 OR "amount" > $2)
	// [draft 100]
}
