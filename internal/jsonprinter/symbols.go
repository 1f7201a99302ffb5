package jsonprinter

// WriteRawSymbol writes name as a JSON symbol (quoted unless Opts.Unquote)
// with no escaping pass, the same primitive printName uses for field
// names. Schema-generated SymbolFunc implementations call this for each
// enum/flag value's label.
func WriteRawSymbol(ctx *Context, name string) {
	ctx.symbol([]byte(name))
}

// WriteFlagSymbols writes a flag-enum's set members as a single symbol,
// space-separated, honoring Options.AlwaysQuoteMultipleFlags: when more
// than one name is present and that option is set, the result stays
// quoted even if Opts.Unquote would otherwise leave it bare.
func WriteFlagSymbols(ctx *Context, names []string) {
	quote := !ctx.Opts.Unquote || (len(names) > 1 && ctx.Opts.AlwaysQuoteMultipleFlags)
	if quote {
		ctx.char('"')
	}
	for i, n := range names {
		if i > 0 {
			ctx.char(' ')
		}
		ctx.printStringPart([]byte(n))
	}
	if quote {
		ctx.char('"')
	}
}
