package main

import (
	"context"
	goflag "flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
	"k8s.io/klog/v2"

	"kargotree/config"
	"kargotree/gocuitree"
	"kargotree/kube"
	"kargotree/tviewtree"
)

type options struct {
	kubeconfig string
	configPath string
	dump       bool
}

func newRootCommand() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:          "kargo",
		Short:        "Browse namespaces, pods and config maps as a tree",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), o)
		},
	}

	defaultKubeconfig := ""
	if home := homedir.HomeDir(); home != "" {
		defaultKubeconfig = filepath.Join(home, ".kube", "config")
	}
	flags := cmd.Flags()
	flags.StringVar(&o.kubeconfig, "kubeconfig", defaultKubeconfig, "absolute path to the kubeconfig file")
	flags.StringVar(&o.configPath, "config", "", "path to the tree options YAML file")
	flags.BoolVar(&o.dump, "dump", false, "print the namespace tree and exit")

	klogFlags := goflag.NewFlagSet("klog", goflag.ExitOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)
	return cmd
}

func run(ctx context.Context, o *options) error {
	log := klog.Background()

	opts, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	painter, err := tviewtree.NewPainter(opts)
	if err != nil {
		return err
	}
	scope := opts.Scope(log)

	restConfig, err := clientcmd.BuildConfigFromFlags("", o.kubeconfig)
	if err != nil {
		return errors.Wrap(err, "building kubeconfig")
	}
	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return errors.Wrap(err, "creating clientset")
	}

	loader := kube.NewLoader(clientset, log)
	tree, err := loader.PopulateTree(ctx)
	if err != nil {
		return err
	}
	tree.Checkable = opts.Checkable
	tree.Disabled = opts.Disabled
	tree.Activable = opts.Activable

	if o.dump {
		fmt.Println(tviewtree.RenderText(tree, scope, painter))
		return nil
	}

	app := tview.NewApplication().EnableMouse(true)
	view := tviewtree.NewTreeView(tree, scope, painter)
	view.SetBorder(true).SetTitle(" kargo ").SetBorderColor(tcell.ColorYellow)
	view.SetRedrawFunc(func() { app.QueueUpdateDraw(func() {}) })
	view.SetExpandFunc(func(node *gocuitree.Node) {
		loader.Expand(ctx, tree, node, func(fn func()) { app.QueueUpdateDraw(fn) })
	})
	view.SetSelectedFunc(func(node *gocuitree.Node) {
		log.V(2).Info("selected", "path", node.Path())
	})

	return errors.Wrap(app.SetRoot(view, true).Run(), "running application")
}

func main() {
	defer klog.Flush()
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		klog.ErrorS(err, "kargo failed")
		os.Exit(1)
	}
}
