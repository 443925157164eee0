package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"regexviz/internal/render"
	"regexviz/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the rendering front end over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	_ = viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := viper.GetString("addr")
	srv := server.New(&render.Renderer{Command: viper.GetString("dot_bin")})
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, srv.Handler())
}
