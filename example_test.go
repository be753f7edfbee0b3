package md2site_test

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2site"
)

// Example converts a small document to an HTML fragment.
func Example() {
	html, err := md2site.MarkdownToHTML("# Hello\n\nThis is **bold** and `code`.")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(html)
	// Output: <div><h1>Hello</h1><p>This is <b>bold</b> and <code>code</code>.</p></div>
}

// ExampleExtractTitle shows title extraction from the first "# " heading.
func ExampleExtractTitle() {
	title, ok := md2site.ExtractTitle("## Intro\n\n# Tolkien Fan Club\n\ntext")
	fmt.Println(title, ok)
	// Output: Tolkien Fan Club true
}

// ExampleConverter_Convert renders a page into a template with a base path.
func ExampleConverter_Convert() {
	conv, err := md2site.NewConverter(
		md2site.WithTemplate("<h1>{{ Title }}</h1>{{ Content }}"),
		md2site.WithBasePath("/docs/"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), md2site.Input{
		Markdown:   "[home](/index.html)",
		SourcePath: "content/about.md",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(result.HTML)
	// Output: <h1>about</h1><div><p><a href="/docs/index.html">home</a></p></div>
}
