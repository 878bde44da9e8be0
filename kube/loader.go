// Package kube fills a gocuitree with cluster resources, loading each
// namespace's pods and config maps on first expansion.
package kube

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"kargotree/gocuitree"
)

const (
	KindPods       = "Pods"
	KindConfigMaps = "ConfigMaps"
)

// Ref is attached to every node as its Data.
type Ref struct {
	Namespace string
	Kind      string
	Name      string
}

type Loader struct {
	client kubernetes.Interface
	log    logr.Logger
}

func NewLoader(client kubernetes.Interface, log logr.Logger) *Loader {
	return &Loader{client: client, log: log}
}

// PopulateTree builds the namespace tree. Resource groups start unloaded.
func (l *Loader) PopulateTree(ctx context.Context) (*gocuitree.Tree, error) {
	tree := gocuitree.NewTree("namespaces", "namespaces", tcell.ColorYellow, nil)
	tree.Activable = true
	tree.Lazy = true
	tree.Root.Expanded = true

	namespaces, err := l.client.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "listing namespaces")
	}
	for _, ns := range namespaces.Items {
		node := tree.Root.AddChildNode(ns.Name, ns.Name, tcell.ColorGreen, Ref{Namespace: ns.Name})
		for _, kind := range []string{KindPods, KindConfigMaps} {
			node.AddChildNode(fmt.Sprintf("%s/%s", ns.Name, kind), kind, tcell.ColorYellow, Ref{Namespace: ns.Name, Kind: kind})
		}
	}
	l.log.V(2).Info("populated namespace tree", "namespaces", len(namespaces.Items))
	return tree, nil
}

// Children lists the resources under a Pods or ConfigMaps group node.
func (l *Loader) Children(ctx context.Context, tree *gocuitree.Tree, node *gocuitree.Node) ([]*gocuitree.Node, error) {
	ref, ok := node.Data.(Ref)
	if !ok || ref.Kind == "" || ref.Name != "" {
		return nil, nil
	}
	var names []string
	switch ref.Kind {
	case KindPods:
		pods, err := l.client.CoreV1().Pods(ref.Namespace).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, errors.Wrapf(err, "listing pods in %s", ref.Namespace)
		}
		for _, pod := range pods.Items {
			names = append(names, pod.Name)
		}
	case KindConfigMaps:
		configmaps, err := l.client.CoreV1().ConfigMaps(ref.Namespace).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, errors.Wrapf(err, "listing config maps in %s", ref.Namespace)
		}
		for _, cm := range configmaps.Items {
			names = append(names, cm.Name)
		}
	default:
		return nil, errors.Errorf("unknown resource kind %q", ref.Kind)
	}

	children := make([]*gocuitree.Node, 0, len(names))
	for _, name := range names {
		key := fmt.Sprintf("%s/%s/%s", ref.Namespace, ref.Kind, name)
		child := tree.NewNode(key, name, tcell.ColorGreen, Ref{Namespace: ref.Namespace, Kind: ref.Kind, Name: name})
		// Resources have nothing below them.
		child.Loaded = true
		children = append(children, child)
	}
	l.log.V(2).Info("loaded resources", "namespace", ref.Namespace, "kind", ref.Kind, "count", len(children))
	return children, nil
}

// Expand loads node's children in the background if it was never loaded.
// The node shows as loading until update applies the result on the UI
// goroutine.
func (l *Loader) Expand(ctx context.Context, tree *gocuitree.Tree, node *gocuitree.Node, update func(fn func())) {
	if node.Loaded || node.Loading {
		return
	}
	node.Loading = true
	go func() {
		children, err := l.Children(ctx, tree, node)
		update(func() {
			node.Loading = false
			if err != nil {
				l.log.Error(err, "loading children", "node", node.Value())
				return
			}
			node.SetChildren(children)
		})
	}()
}
