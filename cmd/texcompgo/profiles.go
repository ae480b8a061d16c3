package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ispc-texcomp/go-texcomp/texcomp"
)

type ProfilesCmd struct {
	Format string `name:"format" short:"f" help:"Only list this format." enum:"${formats}" default:""`
}

func (c *ProfilesCmd) Run() error {
	formats := texcomp.Formats()
	if c.Format != "" {
		f, err := texcomp.ParseFormat(c.Format)
		if err != nil {
			return err
		}
		formats = []texcomp.Format{f}
	}
	return printProfiles(os.Stdout, formats)
}

func printProfiles(w io.Writer, formats []texcomp.Format) error {
	for _, f := range formats {
		if !f.HasSettings() {
			if _, err := fmt.Fprintf(w, "%s: no settings\n", f); err != nil {
				return err
			}
			continue
		}
		_, err := fmt.Fprintf(w, "%s:\n  profiles: %s\n  fields:   %s\n", f,
			strings.Join(texcomp.Profiles(f), ", "),
			strings.Join(texcomp.SettingsFields(f), ", "))
		if err != nil {
			return err
		}
	}
	return nil
}
