// Package embedchain builds word embeddings from a plain-text corpus and
// orders the strongest words into the most coherent semantic chain.
//
// 🚀 What is embedchain?
//
//	A deterministic, concurrent embedding toolkit that brings together:
//		• Corpus statistics: tokenisation, windowed co-occurrence, PPMI
//		• Spectral bootstrap: randomized SVD with power iteration
//		• Contrastive refinement: InfoNCE updates, offline and online
//		• Permutation scoring: exact Heap's search and branch-and-bound top-K
//		• Pipeline: train, merge, order, look up, project and refine
//
// Under the hood, everything is organized under these subpackages:
//
//	corpus/         tokenizer, vocabulary, co-occurrence and PPMI
//	spectral/       seeded randomized SVD over sparse PPMI
//	contrastive/    pair extraction and the InfoNCE refiner
//	embedding/      tables, hash vectors, ranking and projection
//	matrix/         dense matrices and Gram products
//	permutation/    chain scoring and top-K permutation search
//	pipeline/       the end-to-end trainer with YAML configuration
//	cmd/embedchain  the command-line front end
//
// Quick example:
//
//	p, _ := pipeline.New(pipeline.DefaultConfig())
//	stats, _ := p.Train(sentences)
//	fmt.Println(stats.BestScore, p.Ordering().Labels)
//	fmt.Println(p.Nearest("fox", 5))
//
// Every stage is deterministic: the same corpus and configuration yield
// bit-identical embeddings and the same ordering regardless of worker count.
//
//	go get github.com/katalvlaran/embedchain
package embedchain
