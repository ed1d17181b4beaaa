package getopt

// scan is the dispatcher loop: consume, classify, dispatch, until the first
// non-option token, the end-of-options marker, an exhausted vector, or a
// nonzero callback result.
func scan(cfg *Config, lx *lookup, cur *cursor) int {
	for {
		tok, ok := cur.next()
		if !ok {
			// Every token was an option. The positional callback is
			// not invoked at all in this case.
			return 0
		}

		switch classify(tok) {
		case kindPlain:
			// The first non-option token ends all option scanning;
			// it is handed over as part of the remainder.
			cur.unget()
			return handoff(cfg, cur.rest())

		case kindEnd:
			if cfg.End == EndDisallow {
				// Marker demoted to an ordinary token: it stays
				// in the remainder instead of being consumed.
				cur.unget()
			}
			return handoff(cfg, cur.rest())

		case kindShort:
			if res := shortCluster(cfg, lx, cur, tok[1:]); res != 0 {
				return res
			}

		case kindLong:
			if res := longOption(cfg, lx, cur, tok[2:]); res != 0 {
				return res
			}
		}
	}
}

// shortCluster dispatches each character of a short option body left to
// right. Only the final character may collect positional arguments; earlier
// members run with none, whatever their cap. The first nonzero result stops
// the cluster and becomes its result.
func shortCluster(cfg *Config, lx *lookup, cur *cursor, cluster string) int {
	for i := 0; i < len(cluster); i++ {
		var res int
		switch opt := lx.findShort(cluster[i]); {
		case opt == nil:
			res = reportUnknown(cfg, KindShort, cluster[i], "")
		case i < len(cluster)-1:
			res = invoke(opt, nil, cfg.Data)
		default:
			res = collectAndInvoke(cfg, cur, opt)
		}
		if res != 0 {
			return res
		}
	}
	return 0
}

// longOption dispatches a single long option by exact name.
func longOption(cfg *Config, lx *lookup, cur *cursor, name string) int {
	opt := lx.findLong(name)
	if opt == nil {
		return reportUnknown(cfg, KindLong, 0, name)
	}
	return collectAndInvoke(cfg, cur, opt)
}

// collectAndInvoke pulls up to opt.MaxArgs positional arguments off the
// cursor and invokes the handler with the collected span.
func collectAndInvoke(cfg *Config, cur *cursor, opt *Option) int {
	start := cur.pos
	for n := 0; opt.MaxArgs < 0 || n < opt.MaxArgs; n++ {
		tok, ok := cur.next()
		if !ok {
			break
		}
		if !acceptable(tok) {
			// Leave the rejected token for the outer scan.
			cur.unget()
			break
		}
	}
	return invoke(opt, cur.args[start:cur.pos], cfg.Data)
}

func invoke(opt *Option, args []string, data any) int {
	if opt.Handle == nil {
		return 0
	}
	return opt.Handle(args, data)
}

func handoff(cfg *Config, rest []string) int {
	if cfg.OnArgs == nil {
		return 0
	}
	return cfg.OnArgs(rest, cfg.Data)
}

func reportUnknown(cfg *Config, kind ErrorKind, short byte, long string) int {
	if cfg.OnError == nil {
		return 0
	}
	return cfg.OnError(kind, short, long, cfg.Data)
}
