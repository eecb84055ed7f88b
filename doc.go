// Package html2haml converts generated HTML pages into Haml templates.
//
// # Quick Start
//
// Create a converter and run both hooks around your own HTML injection:
//
//	conv, err := html2haml.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc := html2haml.Document{
//	    HTML:       rendered,
//	    OutputName: "index.html",
//	    Target: html2haml.OutputTarget{
//	        Filename: "index.html",
//	        Filetype: html2haml.FiletypeHaml,
//	        Inject:   html2haml.InjectTrue,
//	        Title:    "Webpack App",
//	    },
//	}
//
//	doc, err = conv.PreProcess(ctx, doc)
//	// ... inject <link> and <script> tags into doc.HTML ...
//	doc, err = conv.PostProcess(ctx, doc, html2haml.Assets{Manifest: "manifest.appcache"})
//	os.WriteFile(doc.OutputName, []byte(doc.HTML), 0644)
//
// # Conversion Pipeline
//
// Documents whose output name ends in .haml, or whose target filetype is
// haml, are converted. Everything else passes through both hooks unchanged.
//
//  1. PreProcess repairs the indentation of a Haml template (head children,
//     then body children), and collapses trailing newlines.
//  2. The caller injects asset tags into the document. Head tags must be
//     written back to back inside one <head>...</head>, and external scripts
//     as one contiguous run of <script ...></script> elements.
//  3. PostProcess extracts the head elements and scripts, translates each
//     into a Haml tag line, and injects them into the Haml skeleton (the
//     stripped template, or the built-in skeleton when the target has no
//     Haml template). The manifest reference goes on the %html line.
//
// A target named index.html is renamed to index.haml by PostProcess; write
// the returned Document's OutputName.
//
// # Limits
//
// The converter is a pattern-based text engine for the shape described in
// step 2. It is not a general HTML or Haml parser: attributes must be double
// quoted, and body realignment is only reliable for one flat run of
// siblings after one deeper block. Hyphenated attribute names are written as
// quoted symbols, as in %meta{ :"http-equiv" => "refresh" }.
package html2haml
