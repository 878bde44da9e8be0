package kube

import (
	"context"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"

	"kargotree/gocuitree"
)

func newClient() *fake.Clientset {
	return fake.NewSimpleClientset(
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "dev"}},
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "prod"}},
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "web", Namespace: "dev"}},
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "worker", Namespace: "dev"}},
		&corev1.ConfigMap{ObjectMeta: metav1.ObjectMeta{Name: "settings", Namespace: "prod"}},
	)
}

func TestPopulateTree(t *testing.T) {
	tree, err := NewLoader(newClient(), logr.Discard()).PopulateTree(context.Background())
	require.NoError(t, err)

	require.Len(t, tree.Root.Children, 2)
	dev := tree.Find("dev")
	require.NotNil(t, dev)
	assert.Equal(t, Ref{Namespace: "dev"}, dev.Data)
	require.Len(t, dev.Children, 2)
	assert.Equal(t, KindPods, dev.Children[0].Name)
	assert.Equal(t, KindConfigMaps, dev.Children[1].Name)

	pods := tree.Find("dev/Pods")
	assert.False(t, pods.IsLeaf(), "groups load lazily")
	assert.False(t, pods.Loaded)
}

func TestChildren(t *testing.T) {
	l := NewLoader(newClient(), logr.Discard())
	ctx := context.Background()
	tree, err := l.PopulateTree(ctx)
	require.NoError(t, err)

	pods, err := l.Children(ctx, tree, tree.Find("dev/Pods"))
	require.NoError(t, err)
	var names []string
	for _, p := range pods {
		names = append(names, p.Name)
		assert.Equal(t, KindPods, p.Data.(Ref).Kind)
	}
	assert.ElementsMatch(t, []string{"web", "worker"}, names)

	cms, err := l.Children(ctx, tree, tree.Find("prod/ConfigMaps"))
	require.NoError(t, err)
	require.Len(t, cms, 1)
	assert.Equal(t, "prod/ConfigMaps/settings", cms[0].Value())

	none, err := l.Children(ctx, tree, tree.Find("dev"))
	require.NoError(t, err)
	assert.Nil(t, none, "namespaces are populated eagerly")
}

func TestChildrenError(t *testing.T) {
	client := newClient()
	client.PrependReactor("list", "pods", func(k8stesting.Action) (bool, runtime.Object, error) {
		return true, nil, assert.AnError
	})
	l := NewLoader(client, logr.Discard())
	tree, err := l.PopulateTree(context.Background())
	require.NoError(t, err)

	_, err = l.Children(context.Background(), tree, tree.Find("dev/Pods"))
	assert.ErrorContains(t, err, "listing pods in dev")
}

func TestExpand(t *testing.T) {
	l := NewLoader(newClient(), logr.Discard())
	ctx := context.Background()
	tree, err := l.PopulateTree(ctx)
	require.NoError(t, err)
	pods := tree.Find("dev/Pods")

	updates := make(chan func(), 1)
	l.Expand(ctx, tree, pods, func(fn func()) { updates <- fn })
	assert.True(t, pods.Loading)

	l.Expand(ctx, tree, pods, func(func()) { t.Error("already loading") })

	(<-updates)()
	assert.False(t, pods.Loading)
	assert.True(t, pods.Loaded)
	assert.Len(t, pods.Children, 2)
	for _, c := range pods.Children {
		assert.Equal(t, pods, c.Parent())
		assert.True(t, c.IsLeaf())
	}
}

func TestExpandKeepsLoadedNodes(t *testing.T) {
	tree := gocuitree.NewTree("r", "r", 0, nil)
	tree.Lazy = true
	child := tree.Root.AddChildNode("c", "c", 0, Ref{Namespace: "dev", Kind: KindPods})
	child.Loaded = true

	NewLoader(newClient(), logr.Discard()).Expand(context.Background(), tree, child, func(func()) {
		t.Error("loaded nodes are not fetched again")
	})
	assert.False(t, child.Loading)
}
