package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/matst80/slask-orders/pkg/presets"
	"github.com/matst80/slask-orders/pkg/query"
	"github.com/matst80/slask-orders/pkg/types"
)

type repl struct {
	engine  *query.Engine
	presets *presets.Store
	line    *liner.State
}

var commands = []string{
	"filter", "clear", "all", "sort", "page", "options",
	"preset", "link", "show", "help", "quit",
}

func (r *repl) run(ctx context.Context) {
	r.line = liner.NewLiner()
	defer r.line.Close()
	r.line.SetCtrlCAborts(true)
	r.line.SetCompleter(func(prefix string) []string {
		matches := make([]string, 0)
		for _, c := range commands {
			if strings.HasPrefix(c, prefix) {
				matches = append(matches, c)
			}
		}
		return matches
	})

	r.show()
	for {
		input, err := r.line.Prompt("orderdeck> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			return
		}
		if err != nil {
			fmt.Printf("read error: %v\n", err)
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		r.line.AppendHistory(input)
		if !r.dispatch(ctx, input) {
			return
		}
	}
}

func (r *repl) dispatch(ctx context.Context, input string) bool {
	args := strings.Fields(input)
	switch args[0] {
	case "quit", "exit":
		return false
	case "help":
		r.help()
	case "show":
		r.show()
	case "filter":
		r.filter(args[1:])
	case "clear":
		r.clear(args[1:])
	case "all":
		r.selectAll(args[1:])
	case "sort":
		r.sort(args[1:])
	case "page":
		r.page(args[1:])
	case "options":
		r.options(args[1:])
	case "preset":
		r.preset(ctx, args[1:])
	case "link":
		fmt.Printf("?%s\n", r.engine.State().QueryValues().Encode())
	default:
		fmt.Printf("unknown command %q, try help\n", args[0])
	}
	return true
}

func (r *repl) help() {
	fmt.Println(`filter <field> <value>       toggle a filter value
clear [field]                clear one field or everything
all <field>                  select every option for a field
sort <key> [asc|desc]        change sorting
page <n>                     jump to a page
options <field>              list selectable values
preset save <name>           save current filters+sort
preset load <name>           apply a saved preset
preset delete <name>         remove a preset
preset list                  list saved presets
link                         print a shareable query string
show                         render the current page`)
}

func (r *repl) filter(args []string) {
	if len(args) < 2 {
		fmt.Println("usage: filter <field> <value>")
		return
	}
	field := types.FilterField(args[0])
	if !field.Valid() {
		fmt.Printf("unknown field %q\n", args[0])
		return
	}
	r.engine.ToggleFilter(field, strings.Join(args[1:], " "))
	r.show()
}

func (r *repl) clear(args []string) {
	if len(args) == 0 {
		r.engine.ClearAll()
	} else {
		r.engine.ClearField(types.FilterField(args[0]))
	}
	r.show()
}

func (r *repl) selectAll(args []string) {
	if len(args) == 0 {
		fmt.Println("usage: all <field>")
		return
	}
	r.engine.SelectAll(types.FilterField(args[0]))
	r.show()
}

func (r *repl) sort(args []string) {
	if len(args) == 0 {
		fmt.Println("usage: sort <key> [asc|desc]")
		return
	}
	if !slices.Contains(types.SortKeys, args[0]) {
		fmt.Printf("unknown sort key %q, try one of %s\n", args[0], strings.Join(types.SortKeys, ", "))
		return
	}
	direction := types.Ascending
	if len(args) > 1 {
		direction = types.SortDirection(args[1])
	}
	r.engine.SetSort(args[0], direction)
	r.show()
}

func (r *repl) page(args []string) {
	if len(args) == 0 {
		fmt.Println("usage: page <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("not a page number: %q\n", args[0])
		return
	}
	r.engine.SetPage(n)
	r.show()
}

func (r *repl) options(args []string) {
	if len(args) == 0 {
		fmt.Println("usage: options <field>")
		return
	}
	field := types.FilterField(args[0])
	if !field.Valid() {
		fmt.Printf("unknown field %q\n", args[0])
		return
	}
	state := r.engine.State()
	for _, v := range r.engine.Options(field) {
		marker := " "
		if state.Filters[field].Has(v) {
			marker = "*"
		}
		fmt.Printf(" %s %s\n", marker, v)
	}
}

func (r *repl) preset(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("usage: preset save|load|delete|list [name]")
		return
	}
	switch args[0] {
	case "list":
		list := r.presets.List(ctx)
		if len(list) == 0 {
			fmt.Println("no presets saved yet")
			return
		}
		active := r.presets.Active(ctx)
		for _, p := range list {
			marker := " "
			if p.Name == active {
				marker = "*"
			}
			fmt.Printf(" %s %s (sort %s %s)\n", marker, p.Name, p.SortKey, p.SortDirection)
		}
	case "save":
		name := strings.Join(args[1:], " ")
		state := r.engine.State()
		if _, err := r.presets.Save(ctx, name, state.Filters, state.SortKey, state.SortDirection); err != nil {
			fmt.Printf("could not save preset: %v\n", err)
			return
		}
		if err := r.presets.SetActive(ctx, strings.TrimSpace(name)); err != nil {
			fmt.Printf("could not mark preset active: %v\n", err)
		}
	case "load":
		name := strings.Join(args[1:], " ")
		p, err := r.presets.Load(ctx, name)
		if errors.Is(err, types.ErrPresetNotFound) {
			fmt.Printf("no preset named %q\n", name)
			return
		}
		if err != nil {
			fmt.Printf("could not load preset: %v\n", err)
			return
		}
		r.engine.Apply(p.Filters, p.SortKey, p.SortDirection)
		if err := r.presets.SetActive(ctx, p.Name); err != nil {
			fmt.Printf("could not mark preset active: %v\n", err)
		}
		r.show()
	case "delete":
		name := strings.Join(args[1:], " ")
		if err := r.presets.Delete(ctx, name); err != nil {
			fmt.Printf("could not delete preset: %v\n", err)
		}
	default:
		fmt.Printf("unknown preset command %q\n", args[0])
	}
}
