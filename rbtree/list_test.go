// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree_test

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/bitmark-inc/redblack/rbtree"
)

func TestListShort(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"2136", "9651", "4079", "1042", "3579",
		"3630", "1427", "5843", "9549", "5433",
		"1720", "0506", "8382", "6774", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []string{
		"8133", "2136", "9651", "4079", "1042",
		"3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179",
		"5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774",
		"3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982",
		"3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797",
		"3028", "5880", "3061", "5212", "6539",
		"1320", "3581", "3334", "4348", "2934",
		"8342", "8814", "8736", "1353", "3082",
		"9620", "0056", "5063", "1245", "7066",
		"7435", "2999", "7803", "1303", "1697",
		"0017", "4314", "9926", "7587", "2531",
		"8123", "5693", "7495", "9975", "5465",
		"4342", "7958", "7138", "9382", "0672",
		"5402", "0204", "2397", "2712", "0938",
		"9610", "3611", "2140", "4289", "9271",
		"4786", "4145", "1066", "4366", "6716",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// delete a growing prefix of the list, then the remainder, checking
// the tree after every stage
func doList(t *testing.T, addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[string]struct{})

		tree := rbtree.New(strings.Compare)
		for _, key := range addList {
			tree.Insert(key)
		}

		if err := tree.Check(); nil != err {
			depth := tree.Print()
			t.Logf("depth: %d", depth)
			t.Fatalf("add: inconsistent tree: %s", err)
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				if rbtree.Fail != tree.Delete(key) {
					t.Fatalf("second delete of: %q succeeded", key)
				}
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			if rbtree.Success != tree.Delete(key) {
				t.Fatalf("delete: %q failed", key)
			}
			if err := tree.Check(); nil != err {
				depth := tree.Print()
				t.Logf("depth: %d", depth)
				t.Fatalf("delete: %q inconsistent tree: %s", key, err)
			}
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			if rbtree.Success != tree.Delete(key) {
				t.Fatalf("delete: %q failed", key)
			}
		}
		if !tree.IsEmpty() {
			depth := tree.Print()
			t.Logf("depth: %d", depth)
			t.Fatal("remaining nodes")
		}
	}
}

// traverse the tree forwards to check ordering
func doTraverse(t *testing.T, addList []string) {

	unique := make(map[string]struct{})
	tree := rbtree.New(strings.Compare)
	for _, key := range addList {
		unique[key] = struct{}{}
		tree.Insert(key)
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	n := 0
	tree.Walk(func(key string) bool {
		if expected[n] != key {
			t.Fatalf("next item: actual: %q  expected: %q", key, expected[n])
		}
		n += 1
		return true
	})

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), len(expected))
	}
	if expected[0] != tree.First().Value() {
		t.Fatalf("first: actual: %q  expected: %q", tree.First().Value(), expected[0])
	}
	if expected[n-1] != tree.Last().Value() {
		t.Fatalf("last: actual: %q  expected: %q", tree.Last().Value(), expected[n-1])
	}

	// delete remainder
	for _, key := range expected {
		tree.Delete(key)
	}

	if !tree.IsEmpty() {
		depth := tree.Print()
		t.Logf("depth: %d", depth)
		t.Fatalf("remaining nodes")
	}
	if 0 != tree.Count() {
		t.Fatalf("remaining count not zero: %d", tree.Count())
	}
}

func makeKey() string {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return fmt.Sprintf("%04d", n%10000)
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := rbtree.New(strings.Compare)
	d := make([]string, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Insert(key)
	}

	if err := tree.Check(); nil != err {
		t.Fatalf("inconsistent tree: %s", err)
	}

	for _, key := range d {
		tree.Delete(key)
		if tree.Contains(key) {
			t.Fatalf("deleted key: %q still present", key)
		}
	}
	if err := tree.Check(); nil != err {
		t.Fatalf("inconsistent tree after deletes: %s", err)
	}

	// a key outside the generated range
	const testKey = "500"
	if !tree.Insert(testKey) {
		t.Fatalf("could not add test key: %q", testKey)
	}
	if err := tree.Check(); nil != err {
		t.Fatalf("inconsistent tree: %s", err)
	}

	tv, status := tree.Find(testKey)
	if rbtree.Success != status {
		t.Fatalf("could not find test key: %q  status: %s", testKey, status)
	}
	if testKey != tv.Value() {
		t.Fatalf("test key mismatch: actual: %q  expected: %q", tv.Value(), testKey)
	}

	if rbtree.Success != tree.Delete(testKey) {
		t.Fatalf("delete test key: %q failed", testKey)
	}
	if _, status := tree.Find(testKey); rbtree.NotFound != status {
		t.Fatalf("test key not deleted, status: %s", status)
	}
}

func TestGetDepthInTree(t *testing.T) {
	addList := []string{"01", "02", "03", "04", "05", "06", "07"}

	tree := rbtree.New(strings.Compare)
	for _, key := range addList {
		tree.Insert(key)
	}

	node, _ := tree.Find("05")
	if d := node.Depth(); d != 3 {
		t.Fatalf("incorrect node depth: %d", d)
	}
	node, _ = tree.Find("02")
	if d := node.Depth(); d != 0 {
		t.Fatalf("incorrect root depth: %d", d)
	}
}

func TestGetChildrenByDepth(t *testing.T) {
	addList := []string{"01", "02", "03", "04", "05", "06", "07"}

	tree := rbtree.New(strings.Compare)
	for _, key := range addList {
		tree.Insert(key)
	}

	if len(tree.Root().ChildrenByDepth(1)) != 2 {
		t.Fatalf("incorrect children number in depth 1")
	}
	if len(tree.Root().ChildrenByDepth(2)) != 2 {
		t.Fatalf("incorrect children number in depth 2")
	}
	if len(tree.Root().ChildrenByDepth(3)) != 2 {
		t.Fatalf("incorrect children number in depth 3")
	}
}
