package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/consolet/consolet"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show the progress-banner control flow",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Classic success.
		_ = cn.Progress("Waiting", func(p *consolet.Progress) error {
			time.Sleep(time.Second)
			return nil
		})

		// Classic failure, kept local to this step.
		_ = cn.Progress("Failing", func(p *consolet.Progress) error {
			time.Sleep(time.Second)
			return errors.New("this is a gratuitous error")
		}, consolet.WithoutReraise())

		// In-line progress marks.
		_ = cn.Progress("Progressing", func(p *consolet.Progress) error {
			for i := 0; i < 10; i++ {
				time.Sleep(200 * time.Millisecond)
				p.Tick("")
			}
			return nil
		})

		// Multi-step: the caller only sees the uniform abort.
		steps := []struct {
			name string
			run  func(*consolet.Progress) error
		}{
			{"Step 1", func(*consolet.Progress) error { time.Sleep(time.Second); return nil }},
			{"Step 2", func(*consolet.Progress) error { time.Sleep(time.Second); return nil }},
			{"Step 3", func(*consolet.Progress) error {
				time.Sleep(time.Second)
				return errors.New("intentional failure")
			}},
			{"Step 4", func(*consolet.Progress) error { time.Sleep(time.Second); return nil }},
		}
		for _, step := range steps {
			if err := cn.Progress(step.name, step.run, consolet.WithHandlerText("")); err != nil {
				if errors.Is(err, consolet.ErrAborted) {
					cn.Err("Something went wrong during one of the steps")
					break
				}
				return err
			}
		}
		return nil
	},
}
