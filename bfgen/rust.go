package bfgen

// RustTarget emits a single main.rs.
type RustTarget struct{}

var _ Target = RustTarget{}

func (RustTarget) Name() string {
	return "rust"
}

func (RustTarget) indent() string {
	return "    "
}

func (RustTarget) prologue(e *emitter, options Options) {
	e.line("use std::io::Write;")
	e.blank()
	e.line("fn main() {")
	e.level++
	e.line("let mut memory: Vec<u8> = vec![0; %d];", options.TapeSize)
	e.line("let mut ptr: isize = 0;")
	e.line("let stdout = std::io::stdout();")
	e.line("let mut out = std::io::BufWriter::new(stdout.lock());")
}

func (RustTarget) epilogue(e *emitter) {
	e.line("out.flush().unwrap();")
	e.level--
	e.line("}")
}

func (RustTarget) move(e *emitter, delta int) {
	if delta < 0 {
		e.line("ptr -= %d;", -delta)
	} else {
		e.line("ptr += %d;", delta)
	}
	e.line("if ptr < 0 || ptr >= memory.len() as isize {")
	e.level++
	e.line("out.flush().unwrap();")
	e.line(`panic!("pointer out of range: {} not in [0, {})", ptr, memory.len());`)
	e.level--
	e.line("}")
}

func (RustTarget) add(e *emitter, delta int) {
	if delta < 0 && delta > -256 {
		e.line("memory[ptr as usize] = memory[ptr as usize].wrapping_sub(%du8);", -delta)
		return
	}
	e.line("memory[ptr as usize] = memory[ptr as usize].wrapping_add(%du8);", wrap(delta))
}

func (RustTarget) set(e *emitter, value byte) {
	e.line("memory[ptr as usize] = %du8;", value)
}

func (RustTarget) output(e *emitter) {
	e.line("out.write_all(&[memory[ptr as usize]]).unwrap();")
}

func (RustTarget) loopBegin(e *emitter) {
	e.line("while memory[ptr as usize] != 0 {")
}

func (RustTarget) emptyBody(e *emitter) {
}

func (RustTarget) loopEnd(e *emitter) {
	e.line("}")
}

func (RustTarget) finish(src []byte) ([]byte, error) {
	return src, nil
}
