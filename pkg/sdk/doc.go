// Package vitrine embeds the vitrine catalog search engine in a Go program.
//
// The client opens a catalog store (a YAML/JSON fixture, Redis or Valkey,
// PostgreSQL or SQLite) and serves the same ranked search, listing and
// product detail that the HTTP API does, without running a server.
//
//	client, _ := vitrine.New(ctx, vitrine.WithCatalogFile("catalog.yaml"))
//	defer client.Close()
//
//	res, _ := client.Search(ctx, "vestido azul", vitrine.Limit(5))
//	for _, p := range res.Products {
//	    fmt.Println(p.ID, p.Name)
//	}
//
//	page, _ := client.Products().List(ctx, vitrine.ListOptions{
//	    Category: "vestido",
//	    Price:    vitrine.PriceUpTo50,
//	})
package vitrine
