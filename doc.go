// Package md2site converts Markdown pages to HTML for static sites.
//
// # Quick Start
//
// Convert a page fragment directly:
//
//	html, err := md2site.MarkdownToHTML("# Hello\n\nWorld")
//	// <div><h1>Hello</h1><p>World</p></div>
//
// Or render a full page through a template:
//
//	conv, err := md2site.NewConverter(md2site.WithBasePath("/docs/"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2site.Input{
//	    Markdown:   content,
//	    SourcePath: "content/index.md",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("public/index.html", []byte(result.HTML), 0644)
//
// # Markdown Dialect
//
// The basic engine supports a deliberately small dialect. Blocks are
// separated by blank lines and each block is one of: paragraph, heading
// (# to ######), fenced code (```), quote (every line starts with >),
// unordered list (every line starts with "- ") or ordered list (every line
// starts with "N. "). Inline markup is **bold**, _italic_, `code`,
// [links](url) and ![images](url). Delimiters must be paired within a
// block; an unpaired one is an error wrapping ErrUnterminatedDelimiter.
// Text is never HTML-escaped.
//
// WithEngine(EngineCommonMark) switches to a CommonMark engine with GFM
// extensions and highlighted code for content outside that dialect.
//
// # Conversion Pipeline
//
//  1. Markdown preprocessing (line endings, byte order mark)
//  2. Markdown to HTML conversion
//  3. Title extraction from the first "# " heading
//  4. Template filling ({{ Title }} and {{ Content }})
//  5. Base path rewriting of root-relative links
//
// # Parallel Processing
//
// For batch builds, ConverterPool hands one converter to each worker:
//
//	pool, err := md2site.NewConverterPool(md2site.ResolvePoolSize(0))
//	conv, err := pool.Acquire(ctx)
//	defer pool.Release(conv)
package md2site
