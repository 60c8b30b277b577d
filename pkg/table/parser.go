package table

import (
	"fmt"
)

// Parser consumes a token stream and builds a Document AST.
type Parser struct {
	toks []Token
	pos  int
}

// Parse lexes and parses table-file source into a Document.
func Parse(src string) (*Document, error) {
	toks, err := NewLexer(src).Tokens()
	if err != nil {
		return nil, err
	}
	p := &Parser{toks: toks}
	return p.parseDocument()
}

func (p *Parser) cur() Token  { return p.toks[p.pos] }
func (p *Parser) advance() Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) curIsIdent(text string) bool {
	return p.cur().Kind == TokIdent && p.cur().Text == text
}

func (p *Parser) expect(kind TokenKind) (Token, error) {
	if p.cur().Kind != kind {
		return Token{}, fmt.Errorf("line %d: expected token kind %d, got %q", p.cur().Line, kind, p.cur().Text)
	}
	return p.advance(), nil
}

func (p *Parser) expectIdent(text string) (Token, error) {
	if !p.curIsIdent(text) {
		return Token{}, fmt.Errorf("line %d: expected %q, got %q", p.cur().Line, text, p.cur().Text)
	}
	return p.advance(), nil
}

func (p *Parser) parseDocument() (*Document, error) {
	doc := &Document{}
	for p.cur().Kind != TokEOF {
		switch {
		case p.curIsIdent("Group"):
			block, err := p.parseGroupBlock()
			if err != nil {
				return nil, err
			}
			doc.Blocks = append(doc.Blocks, block)
		case p.curIsIdent("Flavor"):
			block, err := p.parseFlatBlock()
			if err != nil {
				return nil, err
			}
			doc.Blocks = append(doc.Blocks, block)
		default:
			payload, err := p.parsePayloadUntil(func() bool {
				return p.curIsIdent("Group") || p.curIsIdent("Flavor") || p.cur().Kind == TokEOF
			})
			if err != nil {
				return nil, err
			}
			if len(payload) > 0 {
				doc.Blocks = append(doc.Blocks, &Block{Flavors: []string{"ANY"}, Payload: payload})
			}
		}
	}
	return doc, nil
}

func (p *Parser) parseGroupBlock() (*Block, error) {
	if _, err := p.expectIdent("Group"); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokColon); err != nil {
		return nil, err
	}

	var flavors []string
	for p.curIsIdent("Flavor") {
		p.advance()
		if _, err := p.expect(TokEquals); err != nil {
			return nil, err
		}
		name, err := p.expect(TokIdent)
		if err != nil {
			return nil, err
		}
		flavors = append(flavors, name.Text)
		for p.cur().Kind == TokComma {
			p.advance()
			name, err := p.expect(TokIdent)
			if err != nil {
				return nil, err
			}
			flavors = append(flavors, name.Text)
		}
	}
	if len(flavors) == 0 {
		return nil, fmt.Errorf("line %d: Group: block has no Flavor= lines", p.cur().Line)
	}

	if _, err := p.expectIdent("Common"); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokColon); err != nil {
		return nil, err
	}

	payload, err := p.parsePayloadUntil(func() bool { return p.curIsIdent("End") })
	if err != nil {
		return nil, err
	}

	if _, err := p.expectIdent("End"); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokColon); err != nil {
		return nil, err
	}

	return &Block{Flavors: flavors, Payload: payload}, nil
}

func (p *Parser) parseFlatBlock() (*Block, error) {
	p.advance() // "Flavor"
	if _, err := p.expect(TokEquals); err != nil {
		return nil, err
	}
	name, err := p.expect(TokIdent)
	if err != nil {
		return nil, err
	}
	flavors := []string{name.Text}
	for p.cur().Kind == TokComma {
		p.advance()
		name, err := p.expect(TokIdent)
		if err != nil {
			return nil, err
		}
		flavors = append(flavors, name.Text)
	}

	payload, err := p.parsePayloadUntil(func() bool {
		return p.curIsIdent("Flavor") || p.curIsIdent("Group") || p.cur().Kind == TokEOF
	})
	if err != nil {
		return nil, err
	}
	return &Block{Flavors: flavors, Payload: payload}, nil
}

func (p *Parser) parsePayloadUntil(stop func() bool) (Payload, error) {
	var stmts Payload
	for !stop() {
		if p.cur().Kind == TokEOF {
			return nil, fmt.Errorf("unexpected end of file while parsing table statements")
		}
		if p.curIsIdent("if") {
			stmt, err := p.parseIf()
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, stmt)
			continue
		}
		stmt, err := p.parseAction()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) parseIf() (*IfStmt, error) {
	line := p.cur().Line
	p.advance() // "if"
	if _, err := p.expect(TokLParen); err != nil {
		return nil, err
	}
	cond, err := p.parseOrCond()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokRParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokLBrace); err != nil {
		return nil, err
	}
	body, err := p.parsePayloadUntil(func() bool { return p.cur().Kind == TokRBrace })
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokRBrace); err != nil {
		return nil, err
	}
	return &IfStmt{Cond: cond, Body: body, Line: line}, nil
}

func (p *Parser) parseAction() (*ActionStmt, error) {
	line := p.cur().Line
	nameTok, err := p.expect(TokIdent)
	if err != nil {
		return nil, fmt.Errorf("line %d: expected action name, got %q", p.cur().Line, p.cur().Text)
	}
	if _, err := p.expect(TokLParen); err != nil {
		return nil, err
	}
	var args []string
	if p.cur().Kind != TokRParen {
		for {
			tok := p.cur()
			if tok.Kind != TokString && tok.Kind != TokIdent && tok.Kind != TokNumber {
				return nil, fmt.Errorf("line %d: unexpected argument token %q", tok.Line, tok.Text)
			}
			args = append(args, tok.Text)
			p.advance()
			if p.cur().Kind == TokComma {
				p.advance()
				continue
			}
			break
		}
	}
	if _, err := p.expect(TokRParen); err != nil {
		return nil, err
	}
	return &ActionStmt{Name: nameTok.Text, Args: args, Line: line}, nil
}

func (p *Parser) parseOrCond() (Cond, error) {
	left, err := p.parseAndCond()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == TokOp && p.cur().Text == "||" {
		p.advance()
		right, err := p.parseAndCond()
		if err != nil {
			return nil, err
		}
		left = OrCond{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAndCond() (Cond, error) {
	left, err := p.parseUnaryCond()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == TokOp && p.cur().Text == "&&" {
		p.advance()
		right, err := p.parseUnaryCond()
		if err != nil {
			return nil, err
		}
		left = AndCond{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseUnaryCond() (Cond, error) {
	if p.cur().Kind == TokOp && p.cur().Text == "!" {
		p.advance()
		inner, err := p.parseUnaryCond()
		if err != nil {
			return nil, err
		}
		return NotCond{Inner: inner}, nil
	}
	if p.cur().Kind == TokLParen {
		p.advance()
		cond, err := p.parseOrCond()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokRParen); err != nil {
			return nil, err
		}
		return cond, nil
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() (Cond, error) {
	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != TokOp {
		return nil, fmt.Errorf("line %d: expected comparison operator, got %q", p.cur().Line, p.cur().Text)
	}
	op := p.advance().Text
	right, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	return CompareCond{Left: left, Op: op, Right: right}, nil
}

func (p *Parser) parseOperand() (string, error) {
	tok := p.cur()
	if tok.Kind != TokIdent && tok.Kind != TokString && tok.Kind != TokNumber {
		return "", fmt.Errorf("line %d: expected operand, got %q", tok.Line, tok.Text)
	}
	p.advance()
	return tok.Text, nil
}
