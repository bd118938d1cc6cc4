// Command store is a terminal storefront: it browses the catalog
// through the HTTP API and keeps a local, in-memory shopping cart that
// never leaves the process.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"bookstore/internal/cart"
	"bookstore/internal/catalog"
	"bookstore/internal/client"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	_ = godotenv.Load(".env.local")

	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	api := client.New(baseURL)
	ctx := context.Background()

	basket := cart.New()
	query := catalog.Query{Page: 1, PageSize: catalog.DefaultPageSize}

	page, err := api.ListBooks(ctx, query)
	if err != nil {
		log.Fatalf("cannot reach bookstore API at %s: %v", baseURL, err)
	}
	printPage(page)

	fmt.Println(`Commands: list, next, prev, sort <field> [asc|desc], filter [category], categories, add <id>, remove <id>, cart, clear, checkout, quit`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "list":
			page = showPage(ctx, api, query, page)
		case "next":
			query.Page++
			page = showPage(ctx, api, query, page)
		case "prev":
			if query.Page > 1 {
				query.Page--
			}
			page = showPage(ctx, api, query, page)
		case "sort":
			if len(args) > 0 {
				query.Sort = catalog.ParseSortField(args[0])
			}
			if len(args) > 1 {
				query.Direction = catalog.ParseSortDirection(args[1])
			}
			query.Page = 1
			page = showPage(ctx, api, query, page)
		case "filter":
			query.Category = strings.Join(args, " ")
			query.Page = 1
			page = showPage(ctx, api, query, page)
		case "categories":
			categories, err := api.Categories(ctx)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println(strings.Join(categories, ", "))
		case "add":
			id, ok := parseID(args)
			if !ok {
				continue
			}
			book, found := findBook(page, id)
			if !found {
				fmt.Println("no book with that id on the current page")
				continue
			}
			next, err := basket.Add(book)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			basket = next
			fmt.Printf("added %q (x%d in cart)\n", book.Title, basket.Quantity(id))
		case "remove":
			id, ok := parseID(args)
			if !ok {
				continue
			}
			basket = basket.Remove(id)
			printCart(basket)
		case "cart":
			printCart(basket)
		case "clear":
			basket = basket.Clear()
			fmt.Println("cart cleared")
		case "checkout":
			printCart(basket)
			fmt.Printf("charged $%s — thanks for shopping!\n", basket.Total().StringFixed(2))
			basket = basket.Clear()
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command:", cmd)
		}
	}
}

func showPage(ctx context.Context, api *client.Client, q catalog.Query, prev catalog.PageResult) catalog.PageResult {
	page, err := api.ListBooks(ctx, q)
	if err != nil {
		fmt.Println("error:", err)
		return prev
	}
	printPage(page)
	return page
}

func printPage(p catalog.PageResult) {
	if len(p.Books) == 0 {
		fmt.Println("no books on this page")
	}
	for _, b := range p.Books {
		fmt.Printf("%4d  %-40s %-25s %-12s $%s\n",
			b.ID, truncate(b.Title, 40), truncate(b.Author, 25), b.Category, b.Price.StringFixed(2))
	}
	totalPages := (p.TotalBooks + p.PageSize - 1) / p.PageSize
	fmt.Printf("page %d/%d, %d books total\n", p.PageNumber, totalPages, p.TotalBooks)
}

func printCart(c cart.Cart) {
	if c.Len() == 0 {
		fmt.Println("cart is empty")
		return
	}
	for _, item := range c.Items() {
		line := item.Book.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		fmt.Printf("%4d  %-40s x%d  $%s\n",
			item.Book.ID, truncate(item.Book.Title, 40), item.Quantity, line.StringFixed(2))
	}
	fmt.Printf("total: $%s\n", c.Total().StringFixed(2))
}

func parseID(args []string) (int, bool) {
	if len(args) == 0 {
		fmt.Println("usage: add|remove <id>")
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("id must be an integer")
		return 0, false
	}
	return id, true
}

func findBook(p catalog.PageResult, id int) (catalog.Book, bool) {
	for _, b := range p.Books {
		if b.ID == id {
			return b, true
		}
	}
	return catalog.Book{}, false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
